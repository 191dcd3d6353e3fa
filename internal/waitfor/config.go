// Package waitfor implements the waitfor command: poll HTTP endpoints with
// an interval poller until a response condition holds or a time budget runs
// out.
//
// Targets come from command-line flags or a YAML file:
//
//	timeout: 60s
//	interval: 2s
//
//	targets:
//	  - name: api
//	    url: http://localhost:8080/healthz
//	    status: 200
//	  - name: queue depth
//	    url: http://localhost:9000/stats
//	    json_path: queue.depth
//	    equals: "0"
package waitfor

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config leaves them unset.
const (
	DefaultTimeout  = 60 * time.Second
	DefaultInterval = 2 * time.Second
	DefaultStatus   = 200
)

// Config is the root configuration for a waitfor run.
type Config struct {
	// Timeout is the total wall-clock budget per target.
	Timeout Duration `yaml:"timeout"`

	// Interval is the delay between poll attempts.
	Interval Duration `yaml:"interval"`

	// Targets lists the endpoints to wait for, checked in order.
	Targets []Target `yaml:"targets"`
}

// Target describes one endpoint and the condition that marks it ready.
type Target struct {
	// Name is the display name used in logs. Defaults to the URL.
	Name string `yaml:"name"`

	// URL is the endpoint to poll. http or https only.
	URL string `yaml:"url"`

	// Method is the HTTP method. GET, HEAD or POST; defaults to GET.
	Method string `yaml:"method"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers"`

	// Status is the expected response status code. Defaults to 200.
	Status int `yaml:"status"`

	// Contains, when set, additionally requires the response body to
	// contain this substring.
	Contains string `yaml:"contains"`

	// JSONPath, when set, extracts a value from the JSON response body
	// (gjson path syntax) and requires it to equal Equals.
	JSONPath string `yaml:"json_path"`

	// Equals is the expected value at JSONPath.
	Equals string `yaml:"equals"`

	// Timeout overrides the global timeout for this target.
	Timeout Duration `yaml:"timeout"`

	// Interval overrides the global interval for this target.
	Interval Duration `yaml:"interval"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses a YAML target file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML target data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields and validates every target. Validation is
// synchronous; a bad target fails the whole config before any polling starts.
func (c *Config) ApplyDefaults() error {
	if c.Timeout == 0 {
		c.Timeout = Duration(DefaultTimeout)
	}
	if c.Interval == 0 {
		c.Interval = Duration(DefaultInterval)
	}
	if c.Timeout.Duration() < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout.Duration())
	}
	if c.Interval.Duration() < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.Interval.Duration())
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be defined")
	}

	for i := range c.Targets {
		target := &c.Targets[i]

		if target.URL == "" {
			return fmt.Errorf("targets[%d]: url is required", i)
		}
		parsed, err := url.Parse(target.URL)
		if err != nil {
			return fmt.Errorf("targets[%d]: invalid url: %w", i, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("targets[%d] (%s): url scheme must be http or https, got %q", i, target.URL, parsed.Scheme)
		}

		if target.Name == "" {
			target.Name = target.URL
		}
		if target.Method == "" {
			target.Method = "GET"
		}
		if target.Method != "GET" && target.Method != "HEAD" && target.Method != "POST" {
			return fmt.Errorf("targets[%d] (%s): method must be GET, HEAD, or POST", i, target.Name)
		}
		if target.Status == 0 {
			target.Status = DefaultStatus
		}
		if target.Status < 100 || target.Status > 599 {
			return fmt.Errorf("targets[%d] (%s): status must be a valid HTTP status code, got %d", i, target.Name, target.Status)
		}

		if target.JSONPath != "" && target.Equals == "" {
			return fmt.Errorf("targets[%d] (%s): json_path requires equals", i, target.Name)
		}
		if target.Equals != "" && target.JSONPath == "" {
			return fmt.Errorf("targets[%d] (%s): equals requires json_path", i, target.Name)
		}
		if target.JSONPath != "" && target.Method == "HEAD" {
			return fmt.Errorf("targets[%d] (%s): json_path cannot be used with HEAD", i, target.Name)
		}
		if target.Contains != "" && target.Method == "HEAD" {
			return fmt.Errorf("targets[%d] (%s): contains cannot be used with HEAD", i, target.Name)
		}

		if target.Timeout == 0 {
			target.Timeout = c.Timeout
		}
		if target.Interval == 0 {
			target.Interval = c.Interval
		}
		if target.Timeout.Duration() < 0 {
			return fmt.Errorf("targets[%d] (%s): timeout must not be negative", i, target.Name)
		}
		if target.Interval.Duration() < 0 {
			return fmt.Errorf("targets[%d] (%s): interval must not be negative", i, target.Name)
		}
	}

	return nil
}
