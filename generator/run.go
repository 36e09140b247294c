package generator

import (
	"ecom-pipeline/common"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// Run executes the generation phase: synthesize a dataset from the configured
// seed and write the five CSV tables under the data path.
func Run(config *common.Config) error {
	s := NewSynthesizer(config.Seed)
	ds := s.Dataset(config.CustomerCount, config.ReviewAttempts)

	if err := ds.WriteCSV(config.DataPath); err != nil {
		return err
	}

	log.Infof("Generated %d customers", len(ds.Customers))
	log.Infof("Generated %d products", len(ds.Products))
	log.Infof("Generated %d orders", len(ds.Orders))
	log.Infof("Generated %d order items", len(ds.OrderItems))
	log.Infof("Generated %d reviews", len(ds.Reviews))

	if top := TopSpenders(ds.Orders, 1); len(top) > 0 {
		log.Infof("Top customer by spend: %d ($%.2f)", top[0].CustomerId, top[0].Total)
	}

	return nil
}
