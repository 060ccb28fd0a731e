package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

const (
	TargetDataLake = "adls"
	TargetS3       = "s3"
	TargetGCS      = "gcs"

	CredentialCLI     = "cli"
	CredentialDefault = "default"

	envPrefix = "LAKESYNC"
)

var (
	ErrUnknownTarget     = errors.New("unknown upload target")
	ErrUnknownCredential = errors.New("unknown credential kind")
	ErrUnknownPolicy     = errors.New("unknown overwrite policy")
)

type AppConfig struct {
	Target           string `default:"adls"`
	Credential       string `default:"cli"`
	ResourceGroup    string `default:"lab1_datalakes"`
	Location         string `default:"francecentral"`
	AccountPrefix    string `default:"lakesyncstore"`
	FileSystemPrefix string `default:"testfs"`
	LocalFolder      string `default:"data"`
	RemoteFolder     string `default:"data"`
	Overwrite        string `default:"overwrite"`
	MaxArchiveDepth  int    `default:"8"`
	LogLevel         string `default:"info"`
	S3               S3Config
	GCS              GCSConfig
	Notify           NotifyConfig
}

type S3Config struct {
	Bucket   string
	Region   string
	Profile  string
	Endpoint string
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

type NotifyConfig struct {
	Topic   string
	Region  string
	Profile string
}

// LoadConfig reads the optional config files on top of the defaults. Values
// can be overridden with LAKESYNC_* environment variables.
func LoadConfig(files ...string) (AppConfig, error) {
	var appConfig AppConfig
	loader := configor.New(&configor.Config{ENVPrefix: envPrefix})
	if err := loader.Load(&appConfig, files...); err != nil {
		return appConfig, fmt.Errorf("loading config: %w", err)
	}

	return appConfig, appConfig.Validate()
}

func (c AppConfig) Validate() error {
	switch c.Target {
	case TargetDataLake:
	case TargetS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("target %s requires S3.Bucket", c.Target)
		}
	case TargetGCS:
		if c.GCS.Bucket == "" {
			return fmt.Errorf("target %s requires GCS.Bucket", c.Target)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, c.Target)
	}

	switch c.Credential {
	case CredentialCLI, CredentialDefault:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCredential, c.Credential)
	}

	if _, err := ParseOverwritePolicy(c.Overwrite); err != nil {
		return err
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.MaxArchiveDepth < 0 {
		return fmt.Errorf("MaxArchiveDepth must not be negative, got %d", c.MaxArchiveDepth)
	}

	return nil
}

// RemoteRoot is RemoteFolder without surrounding slashes. "/" addresses the
// root of the remote filesystem, since configor turns an empty value back
// into the default.
func (c AppConfig) RemoteRoot() string {
	return strings.Trim(c.RemoteFolder, "/")
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Target: %s", c.Target))

	if c.Target == TargetDataLake {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Credential: %s", c.Credential))
		configStrArr = append(configStrArr, fmt.Sprintf("  - ResourceGroup: %s", c.ResourceGroup))
		configStrArr = append(configStrArr, fmt.Sprintf("  - Location: %s", c.Location))
	}
	if c.Target == TargetS3 {
		configStrArr = append(configStrArr, fmt.Sprintf("  - S3 Bucket: %s (%s)", c.S3.Bucket, c.S3.Region))
	}
	if c.Target == TargetGCS {
		configStrArr = append(configStrArr, fmt.Sprintf("  - GCS Bucket: %s", c.GCS.Bucket))
	}

	configStrArr = append(configStrArr, fmt.Sprintf("  - Folder: %s -> %s", c.LocalFolder, c.RemoteFolder))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Overwrite: %s", c.Overwrite))
	configStrArr = append(configStrArr, fmt.Sprintf("  - MaxArchiveDepth: %d", c.MaxArchiveDepth))

	if c.Notify.Topic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.Notify.Topic))
	}

	return configStrArr
}
