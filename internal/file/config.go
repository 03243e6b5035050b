package file

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/natsuneco/organica-chart-converter/internal/processor"
)

// ReadConfig loads a converter config, starting from the defaults and
// overriding only the keys the file sets.
func ReadConfig(fsys fs.FS, configFile string) (*processor.Config, error) {
	f, err := fsys.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open: %v", err)
	}
	defer f.Close()
	config := processor.DefaultConfig()
	err = yaml.NewDecoder(f).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("could not decode: %v", err)
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}
