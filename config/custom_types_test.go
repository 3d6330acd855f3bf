/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTimeDurationUnmarshalJSON(t *testing.T) {
	var v struct {
		D TimeDuration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d": "1h30m"}`), &v))
	require.Equal(t, 90*time.Minute, time.Duration(v.D))

	require.NoError(t, json.Unmarshal([]byte(`{"d": 1000000000}`), &v))
	require.Equal(t, time.Second, time.Duration(v.D))

	require.Error(t, json.Unmarshal([]byte(`{"d": "abc"}`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"d": -5}`), &v))
}

func TestTimeDurationUnmarshalYAML(t *testing.T) {
	var v struct {
		D TimeDuration `yaml:"d"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(`d: 500ms`), &v))
	require.Equal(t, 500*time.Millisecond, time.Duration(v.D))

	require.NoError(t, yaml.Unmarshal([]byte(`d: 1000000000`), &v))
	require.Equal(t, time.Second, time.Duration(v.D))

	require.Error(t, yaml.Unmarshal([]byte(`d: abc`), &v))
}

func TestTimeDurationMarshal(t *testing.T) {
	d := TimeDuration(2 * time.Second)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2s"`, string(b))

	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, "2s\n", string(y))
}
