package main

import (
	"fmt"
	"os"
	"time"

	binomial "github.com/Saturn-O/binomial-toolkit"
	"github.com/Saturn-O/binomial-toolkit/common"
	"github.com/rcrowley/go-metrics"
	"github.com/urfave/cli"
)

var (
	log = common.GetLogger("cli")

	sweepTimer = metrics.NewRegisteredTimer("sweep/experiment", nil)
)

func main() {
	app := initApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func initApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binomial"
	app.Version = "0.1"
	app.Usage = "exact binomial distribution calculator"

	app.Commands = []cli.Command{
		{
			Name:    "describe",
			Aliases: []string{"d"},
			Usage:   "print the experiment summary and its statistics",
			Flags:   distFlags(),
			Action:  describeRun,
		},
		{
			Name:    "table",
			Aliases: []string{"t"},
			Usage:   "print the full probability distribution table",
			Flags:   distFlags(),
			Action:  tableRun,
		},
		{
			Name:    "cdf",
			Aliases: []string{"c"},
			Usage:   "print a cumulative probability over [0,k] or [from,k]",
			Flags: append(distFlags(),
				cli.Int64Flag{
					Name:  "upto,k",
					Value: 0,
					Usage: "upper bound of the outcome range",
				},
				cli.Int64Flag{
					Name:  "from,f",
					Usage: "optional lower bound of the outcome range",
				},
			),
			Action: cdfRun,
		},
		{
			Name:    "sweep",
			Aliases: []string{"s"},
			Usage:   "compute every experiment listed in a config file",
			Description: "The config file holds an 'experiments' list, each entry\n" +
				"   with integer 'trials' and float 'prob' keys:\n\n" +
				"   experiments:\n" +
				"     - trials: 10\n" +
				"       prob: 0.3\n" +
				"     - trials: 7\n" +
				"       prob: 0.5",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config,c",
					Value: "experiments.yaml",
					Usage: "path of the experiments config file",
				},
			},
			Action: sweepRun,
		},
	}

	return app
}

func distFlags() []cli.Flag {
	return []cli.Flag{
		cli.Int64Flag{
			Name:  "trials,n",
			Value: 10,
			Usage: "number of independent trials",
		},
		cli.Float64Flag{
			Name:  "prob,p",
			Value: 0.5,
			Usage: "success probability per trial",
		},
	}
}

func newDist(c *cli.Context) (*binomial.Binomial, error) {
	return binomial.NewBinomial(c.Int64("trials"), c.Float64("prob"))
}

func describeRun(c *cli.Context) error {
	b, err := newDist(c)
	if err != nil {
		return err
	}
	fmt.Println(b)
	printStats(b)
	return nil
}

func tableRun(c *cli.Context) error {
	b, err := newDist(c)
	if err != nil {
		return err
	}
	printTable(b)
	return nil
}

func cdfRun(c *cli.Context) error {
	b, err := newDist(c)
	if err != nil {
		return err
	}
	k := c.Int64("upto")
	if c.IsSet("from") {
		k1 := c.Int64("from")
		p, err := b.CumulativeRange(k1, k)
		if err != nil {
			return err
		}
		fmt.Printf("P(%d<=X<=%d) = %.4f\n", k1, k, p)
		return nil
	}
	p, err := b.Cumulative(k)
	if err != nil {
		return err
	}
	fmt.Printf("P(X<=%d) = %.4f\n", k, p)
	return nil
}

func sweepRun(c *cli.Context) error {
	conf, err := common.NewConfig(c.String("config"))
	if err != nil {
		return err
	}
	entries, ok := conf.Get(common.EXPERIMENTS).([]interface{})
	if !ok {
		return fmt.Errorf("config: %q must be a list", common.EXPERIMENTS)
	}
	for i, entry := range entries {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			return fmt.Errorf("experiment %d: entry must be a mapping", i)
		}
		// config values arrive untyped, so the structural integer check
		// runs here: trials given as 10.0 is rejected.
		if err := binomial.ValidateNonNegativeInteger(fields[common.TRIALS]); err != nil {
			return fmt.Errorf("experiment %d: %s: %w", i, common.TRIALS, err)
		}
		n, err := binomial.AsInt64(fields[common.TRIALS])
		if err != nil {
			return fmt.Errorf("experiment %d: %s: %w", i, common.TRIALS, err)
		}
		p, err := toFloat(fields[common.PROB])
		if err != nil {
			return fmt.Errorf("experiment %d: %s: %w", i, common.PROB, err)
		}

		start := time.Now()
		b, err := binomial.NewBinomial(n, p)
		if err != nil {
			return fmt.Errorf("experiment %d: %w", i, err)
		}
		sweepTimer.UpdateSince(start)

		fmt.Println(b)
		printTable(b)
		printStats(b)
	}
	log.Infof("computed %d experiments, mean build time %v",
		len(entries), time.Duration(sweepTimer.Mean()))
	return nil
}

func printTable(b *binomial.Binomial) {
	for k, prob := range b.Distribution() {
		fmt.Printf("P(X=%d) = %.4f\n", k, prob)
	}
}

func printStats(b *binomial.Binomial) {
	fmt.Printf("Expected Value: %.4f\n", b.ExpectedValue())
	fmt.Printf("Variance: %.4f\n", b.Variance())
	fmt.Printf("Skewness: %.4f\n", b.Skewness())
}

// toFloat widens a config value to float64. Probabilities may legitimately
// be written as whole numbers (0 or 1) and parse as ints.
func toFloat(v interface{}) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int:
		return float64(f), nil
	case int64:
		return float64(f), nil
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
}
