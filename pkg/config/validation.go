package config

import "fmt"

// Validate performs validation on all configuration parameters. It runs
// before any data is fetched or any simulation starts.
func (c *Config) Validate() error {
	if c.Asset == "" {
		return fmt.Errorf("asset must be set")
	}

	switch c.Source {
	case "yahoo", "csv":
	default:
		return fmt.Errorf("source must be \"yahoo\" or \"csv\", got %q", c.Source)
	}

	if c.Source == "csv" && c.DataDir == "" {
		return fmt.Errorf("data_dir must be set for the csv source")
	}

	if _, err := c.Start(); err != nil {
		return err
	}

	if c.MonthlyAmount <= 0 {
		return fmt.Errorf("monthly amount must be positive, got: %.2f", c.MonthlyAmount)
	}

	if c.Simulations < 0 {
		return fmt.Errorf("simulations must be non-negative (0 = exhaustive), got: %d", c.Simulations)
	}

	return c.validateGrid()
}

func (c *Config) validateGrid() error {
	if len(c.Durations) > 0 {
		prev := 0.0
		for _, y := range c.Durations {
			if y <= 0 {
				return fmt.Errorf("durations must be positive, got: %.2f", y)
			}
			if y <= prev {
				return fmt.Errorf("durations must be strictly ascending, got %.2f after %.2f", y, prev)
			}
			prev = y
		}
		return nil
	}

	if c.DurationStart <= 0 {
		return fmt.Errorf("duration start must be positive, got: %.2f", c.DurationStart)
	}
	if c.DurationStop < c.DurationStart {
		return fmt.Errorf("duration stop %.2f is before start %.2f", c.DurationStop, c.DurationStart)
	}
	if c.DurationStep <= 0 {
		return fmt.Errorf("duration step must be positive, got: %.2f", c.DurationStep)
	}

	return nil
}
