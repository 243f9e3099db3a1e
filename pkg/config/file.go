package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/total"
	"github.com/curtis3389/advent-2023/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Mode:        ptr.To(calibration.ModeSimple),
		ErrorPolicy: ptr.To(total.PolicyFailFast),
		// A blank line has no digit and fails like any other bad line.
		SkipBlankLines: ptr.To(false),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "trebuchet.json"
	}
	return filepath.Join(dir, "trebuchet", "config.json")
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type RawFileConfig struct {
	Mode           *calibration.Mode `json:"mode,omitempty"`
	ErrorPolicy    *total.Policy     `json:"errorPolicy,omitempty"`
	SkipBlankLines *bool             `json:"skipBlankLines,omitempty"`
}

// Validate rejects values that no parser or policy understands.
func (r *RawFileConfig) Validate() error {
	if r.Mode != nil {
		if _, err := calibration.ParseMode(string(*r.Mode)); err != nil {
			return err
		}
	}
	if r.ErrorPolicy != nil {
		if _, err := total.ParsePolicy(string(*r.ErrorPolicy)); err != nil {
			return err
		}
	}
	return nil
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		Mode:           ptr.To(c.Mode()),
		ErrorPolicy:    ptr.To(c.ErrorPolicy()),
		SkipBlankLines: ptr.To(c.SkipBlankLines()),
	}

	return rawConfig, nil
}

func (f *File) Mode() calibration.Mode {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Mode != nil {
		return *f.c.Mode
	}
	return *defaultFileConfig.Mode
}

func (f *File) ErrorPolicy() total.Policy {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.ErrorPolicy != nil {
		return *f.c.ErrorPolicy
	}
	return *defaultFileConfig.ErrorPolicy
}

func (f *File) SkipBlankLines() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.SkipBlankLines != nil {
		return *f.c.SkipBlankLines
	}
	return *defaultFileConfig.SkipBlankLines
}

func (f *File) SetMode(m calibration.Mode) {
	if f.c == nil {
		panic("config is nil")
	}

	if _, err := calibration.ParseMode(string(m)); err != nil {
		panic(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Mode = &m
}

func (f *File) SetErrorPolicy(p total.Policy) {
	if f.c == nil {
		panic("config is nil")
	}

	if _, err := total.ParsePolicy(string(p)); err != nil {
		panic(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.ErrorPolicy = &p
}

func (f *File) SetSkipBlankLines(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.SkipBlankLines = &b
}

func (f *File) SumOptions() total.Options {
	return total.Options{
		Mode:           f.Mode(),
		Policy:         f.ErrorPolicy(),
		SkipBlankLines: f.SkipBlankLines(),
	}
}

func (f *File) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"mode":           f.Mode(),
		"errorPolicy":    f.ErrorPolicy(),
		"skipBlankLines": f.SkipBlankLines(),
	}
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	if err := conf.Validate(); err != nil {
		return pkgerrors.Wrapf(err, "invalid config in file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	if err := os.MkdirAll(filepath.Dir(f.filepath), 0o755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create directory for %s", f.filepath)
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}
