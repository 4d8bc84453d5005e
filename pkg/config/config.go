package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var configFile = "/etc/wte/config.yaml"

const (
	configEnv = "WTE_CONFIG"

	DefaultNotificationPeriod = 10
	DefaultImage              = "openyuma"
	DefaultNetconfPort        = 8300
	DefaultNetconfUser        = "admin"
	DefaultNetconfTimeout     = 30 * time.Second
	DefaultOutputDirectory    = "."

	defaultImageKey = "default"
)

type Config struct {
	ManagementIPNetwork      string            `yaml:"managementIpNetwork"`
	HostIPNetwork            string            `yaml:"hostIpNetwork"`
	NotificationPeriod       int               `yaml:"notificationPeriod"`
	Controller               Controller        `yaml:"controller"`
	AutomaticODLRegistration bool              `yaml:"automatic-odl-registration"`
	Netconf                  Netconf           `yaml:"netconf"`
	Images                   map[string]string `yaml:"images"`
	ExecLogPath              string            `yaml:"execLogPath"`
	MetricsAddress           string            `yaml:"metricsAddress"`
	OutputDirectory          string            `yaml:"outputDirectory"`
}

// Controller holds the SDN controller nodes get registered with.
type Controller struct {
	IPAddress string `yaml:"ip-address"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

// Netconf holds the credentials of the NETCONF servers running in the nodes.
type Netconf struct {
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LoadConfig reads the configuration from the file named by WTE_CONFIG or
// the default location.
func LoadConfig() (*Config, error) {
	file := configFile
	if val := os.Getenv(configEnv); val != "" {
		file = val
	}
	return LoadConfigFrom(file)
}

func LoadConfigFrom(path string) (*Config, error) {
	config := &Config{}

	read, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	err = yaml.Unmarshal(read, &config)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling config file: %w", err)
	}

	config.setDefaults()
	return config, nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	config := &Config{}
	config.setDefaults()
	return config
}

func (c *Config) setDefaults() {
	if c.NotificationPeriod <= 0 {
		c.NotificationPeriod = DefaultNotificationPeriod
	}
	if c.Netconf.Port == 0 {
		c.Netconf.Port = DefaultNetconfPort
	}
	if c.Netconf.Username == "" {
		c.Netconf.Username = DefaultNetconfUser
		c.Netconf.Password = DefaultNetconfUser
	}
	if c.Netconf.Timeout == 0 {
		c.Netconf.Timeout = DefaultNetconfTimeout
	}
	if c.OutputDirectory == "" {
		c.OutputDirectory = DefaultOutputDirectory
	}
}

// Complete reports whether all controller parameters are set.
func (c Controller) Complete() bool {
	return c.IPAddress != "" && c.Port != 0 && c.Username != "" && c.Password != ""
}

// RegistrationEnabled reports whether nodes should be registered with the
// controller.
func (c *Config) RegistrationEnabled() bool {
	return c.AutomaticODLRegistration && c.Controller.Complete()
}

// Image returns the container image for the given node type.
func (c *Config) Image(nodeType string) string {
	if image, ok := c.Images[nodeType]; ok && nodeType != "" {
		return image
	}
	if image, ok := c.Images[defaultImageKey]; ok {
		return image
	}
	return DefaultImage
}
