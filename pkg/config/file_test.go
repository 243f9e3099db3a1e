package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/total"
	"github.com/curtis3389/advent-2023/pkg/utils/ptr"
)

func TestNewFile(t *testing.T) {
	tests := []struct {
		name       string
		content    *string
		wantMode   calibration.Mode
		wantPolicy total.Policy
		wantSkip   bool
		wantErr    error
		wantAnyErr bool
	}{
		{name: "missing file uses defaults", wantMode: calibration.ModeSimple, wantPolicy: total.PolicyFailFast},
		{name: "empty file uses defaults", content: ptr.To("  \n"), wantMode: calibration.ModeSimple, wantPolicy: total.PolicyFailFast},
		{name: "partial file", content: ptr.To(`{"mode":"extended"}`), wantMode: calibration.ModeExtended, wantPolicy: total.PolicyFailFast},
		{
			name:       "full file",
			content:    ptr.To(`{"mode":"extended","errorPolicy":"collect","skipBlankLines":true}`),
			wantMode:   calibration.ModeExtended,
			wantPolicy: total.PolicyCollect,
			wantSkip:   true,
		},
		{name: "unknown mode", content: ptr.To(`{"mode":"fancy"}`), wantErr: calibration.ErrUnknownMode},
		{name: "unknown policy", content: ptr.To(`{"errorPolicy":"retry"}`), wantErr: total.ErrUnknownPolicy},
		{name: "broken json", content: ptr.To(`{"mode":`), wantAnyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			f, err := NewFile(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, f.Mode())
			assert.Equal(t, tt.wantPolicy, f.ErrorPolicy())
			assert.Equal(t, tt.wantSkip, f.SkipBlankLines())
		})
	}
}

func TestFile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	f.SetMode(calibration.ModeExtended)
	f.SetErrorPolicy(total.PolicyCollect)
	f.SetSkipBlankLines(true)
	require.NoError(t, f.Save())

	loaded, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, total.Options{
		Mode:           calibration.ModeExtended,
		Policy:         total.PolicyCollect,
		SkipBlankLines: true,
	}, loaded.SumOptions())
}

func TestFile_SetInvalidPanics(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Panics(t, func() { f.SetMode("fancy") })
	assert.Panics(t, func() { f.SetErrorPolicy("retry") })
}

func TestNewRawFileConfigFromConfig(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	raw, err := NewRawFileConfigFromConfig(f)
	require.NoError(t, err)
	assert.Equal(t, calibration.ModeSimple, *raw.Mode)
	assert.Equal(t, total.PolicyFailFast, *raw.ErrorPolicy)
	assert.False(t, *raw.SkipBlankLines)

	_, err = NewRawFileConfigFromConfig(nil)
	assert.Error(t, err)
}
