package life

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

//default options
const (
	DefWidth        = 40
	DefHeight       = 15
	DefInterval     = time.Millisecond * 50
	DefMinSeedCells = 100
	DefMaxSeedCells = 900
)

//Options represents the session's configurable options
type Options struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Interval     time.Duration `yaml:"interval"`     //delay between generations
	MinSeedCells int           `yaml:"minSeedCells"` //lower bound of the random seeding target
	MaxSeedCells int           `yaml:"maxSeedCells"` //upper bound of the random seeding target
	AutoStart    bool          `yaml:"autoStart"`    //enter Running right after a random seed instead of pausing
	MaxSteps     int           `yaml:"maxSteps"`     //stop after this many generations, 0 means run forever
	Seed         int64         `yaml:"seed"`         //RNG seed, 0 picks the current time
}

var DefaultOptions = Options{
	Width:        DefWidth,
	Height:       DefHeight,
	Interval:     DefInterval,
	MinSeedCells: DefMinSeedCells,
	MaxSeedCells: DefMaxSeedCells,
}

//rawOptions mirrors Options with the interval as a duration string,
//so an options file can say "50ms" instead of nanoseconds
type rawOptions struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Interval     string `yaml:"interval"`
	MinSeedCells int    `yaml:"minSeedCells"`
	MaxSeedCells int    `yaml:"maxSeedCells"`
	AutoStart    bool   `yaml:"autoStart"`
	MaxSteps     int    `yaml:"maxSteps"`
	Seed         int64  `yaml:"seed"`
}

//UnmarshalYAML overlays the document onto the current values, so keys
//absent from the file keep whatever o already holds
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	raw := rawOptions{
		Width:        o.Width,
		Height:       o.Height,
		Interval:     o.Interval.String(),
		MinSeedCells: o.MinSeedCells,
		MaxSeedCells: o.MaxSeedCells,
		AutoStart:    o.AutoStart,
		MaxSteps:     o.MaxSteps,
		Seed:         o.Seed,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d, err := time.ParseDuration(raw.Interval)
	if err != nil {
		return fmt.Errorf("life: bad interval %q: %v", raw.Interval, err)
	}
	*o = Options{
		Width:        raw.Width,
		Height:       raw.Height,
		Interval:     d,
		MinSeedCells: raw.MinSeedCells,
		MaxSeedCells: raw.MaxSeedCells,
		AutoStart:    raw.AutoStart,
		MaxSteps:     raw.MaxSteps,
		Seed:         raw.Seed,
	}
	return nil
}

//LoadOptions overlays the YAML file at path onto o
func LoadOptions(path string, o *Options) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("life: read options: %v", err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("life: parse options: %v", err)
	}
	return nil
}

//Validate checks the option values before a session is built
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return ErrInvalidDimension
	}
	if o.MinSeedCells < 0 || o.MaxSeedCells < o.MinSeedCells {
		return fmt.Errorf("life: seed cell range [%d, %d] is not ordered", o.MinSeedCells, o.MaxSeedCells)
	}
	if o.Interval < 0 {
		return fmt.Errorf("life: interval must not be negative")
	}
	return nil
}
