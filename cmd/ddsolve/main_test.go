package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds"
)

const exampleDeal = "N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432"

func TestParseState(t *testing.T) {
	state, err := parseState(exampleDeal, "nt", "e", []string{"C7", "cq"})
	require.NoError(t, err)
	assert.Equal(t, bridge.NoTrump, state.Trump)
	assert.Equal(t, bridge.East, state.Leader)
	assert.Equal(t, []bridge.Card{
		bridge.NewCard(bridge.Clubs, bridge.Seven),
		bridge.NewCard(bridge.Clubs, bridge.Queen),
	}, state.Played)

	_, err = parseState(exampleDeal, "X", "N", nil)
	assert.Error(t, err)
	_, err = parseState("N:", "S", "N", nil)
	assert.ErrorIs(t, err, bridge.ErrFormat)
}

func TestTableData(t *testing.T) {
	var table dds.TableResults
	table[bridge.NoTrump][bridge.South] = 9
	data := tableData(table)
	require.Len(t, data, 5)
	assert.Equal(t, []string{"", "C", "D", "H", "S", "NT"}, data[0])
	assert.Equal(t, []string{"South", "0", "0", "0", "0", "9"}, data[3])
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(dds.EnvMaxThreads, "3")
	configPath = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxThreads)
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := dds.DefaultConfig()
	cfg.LogLevel = "warn"
	zl, err := newLogger(cfg)
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))

	cfg.LogLevel = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), dds.WrapperVersion())
}
