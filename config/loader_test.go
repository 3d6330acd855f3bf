/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string
	Retries int
	Timeout TimeDuration

	keyPrefix string
}

func (c *testConfig) KeyPrefix() string {
	return c.keyPrefix
}

func (c *testConfig) SetProviderDefaults(dp DataProvider) {
	dp.SetDefault("retries", 3)
}

func (c *testConfig) Set(dp DataProvider) error {
	var err error
	if c.Name, err = dp.GetString("name"); err != nil {
		return err
	}
	if c.Retries, err = dp.GetInt("retries"); err != nil {
		return err
	}
	timeout, err := dp.GetDuration("timeout")
	if err != nil {
		return err
	}
	c.Timeout = TimeDuration(timeout)
	return nil
}

func TestLoaderLoadFromReaderYAML(t *testing.T) {
	cfgData := bytes.NewBufferString(`
name: data-browser
timeout: 30s
`)
	cfg := &testConfig{}
	err := NewDefaultLoader("").LoadFromReader(cfgData, DataTypeYAML, cfg)
	require.NoError(t, err)
	require.Equal(t, "data-browser", cfg.Name)
	require.Equal(t, 3, cfg.Retries, "default should be applied")
	require.Equal(t, "30s", cfg.Timeout.String())
}

func TestLoaderLoadFromReaderJSON(t *testing.T) {
	cfgData := bytes.NewBufferString(`{"name": "logs", "retries": 7, "timeout": "1m"}`)
	cfg := &testConfig{}
	err := NewDefaultLoader("").LoadFromReader(cfgData, DataTypeJSON, cfg)
	require.NoError(t, err)
	require.Equal(t, "logs", cfg.Name)
	require.Equal(t, 7, cfg.Retries)
	require.Equal(t, "1m0s", cfg.Timeout.String())
}

func TestLoaderKeyPrefix(t *testing.T) {
	cfgData := bytes.NewBufferString(`
panel:
  name: insights
  retries: 5
`)
	cfg := &testConfig{keyPrefix: "panel"}
	err := NewDefaultLoader("").LoadFromReader(cfgData, DataTypeYAML, cfg)
	require.NoError(t, err)
	require.Equal(t, "insights", cfg.Name)
	require.Equal(t, 5, cfg.Retries)
}

func TestLoaderMultipleConfigs(t *testing.T) {
	cfgData := bytes.NewBufferString(`
first:
  name: a
second:
  name: b
`)
	cfg1 := &testConfig{keyPrefix: "first"}
	cfg2 := &testConfig{keyPrefix: "second"}
	err := NewDefaultLoader("").LoadFromReader(cfgData, DataTypeYAML, cfg1, cfg2)
	require.NoError(t, err)
	require.Equal(t, "a", cfg1.Name)
	require.Equal(t, "b", cfg2.Name)
}

func TestViperAdapterGetStringFromSet(t *testing.T) {
	va := NewViperAdapter()
	va.Set("mode", "Fast")

	got, err := va.GetStringFromSet("mode", []string{"fast", "slow"}, true)
	require.NoError(t, err)
	require.Equal(t, "Fast", got)

	_, err = va.GetStringFromSet("mode", []string{"fast", "slow"}, false)
	require.Error(t, err)
}
