package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sdcgrid/internal/hcl"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const boldBlock = `
bold {
  name_source    = "func/bold.nii.gz"
  bold_ref       = "work/ref.nii.gz"
  bold_ref_brain = "work/ref_brain.nii.gz"
  bold_mask      = "work/mask.nii.gz"
  t1_brain       = "anat/t1_brain.nii.gz"
  t1_to_template_reverse_transform = "anat/reverse.h5"
  metadata = {
    PhaseEncodingDirection = "j"
  }
}
`

func runApp(t *testing.T, manifestPath, outputFormat string) (stdout, logs *bytes.Buffer, err error) {
	t.Helper()
	cfg, cfgErr := NewConfig(Config{
		ManifestPath: manifestPath,
		OutputFormat: outputFormat,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, cfgErr)

	stdout = &bytes.Buffer{}
	logs = &bytes.Buffer{}
	a := NewApp(stdout, logs, cfg, hcl.NewLoader())
	err = a.Run(context.Background())
	return stdout, logs, err
}

func TestRun_PhaseDiffManifest(t *testing.T) {
	path := writeManifest(t, boldBlock+`
fieldmap "phasediff" {
  inputs = {
    phasediff  = "fmap/phasediff.nii.gz"
    magnitude1 = "fmap/magnitude1.nii.gz"
  }
}
`)

	stdout, logs, err := runApp(t, path, FormatMermaid)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "phdiff_wf")
	assert.Contains(t, out, "sdc_unwarp_wf")
	assert.Contains(t, logs.String(), "FMB (phasediff-based)")
}

func TestRun_ForcedFallbackJSON(t *testing.T) {
	path := writeManifest(t, boldBlock+`
correction {
  force_syn = true
  template  = "MNI152NLin2009cAsym"
}
`)

	stdout, _, err := runApp(t, path, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Name   string `json:"name"`
		Method string `json:"method"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, "sdc_wf", decoded.Name)
	assert.Equal(t, `FLB ("fieldmap-less" based) - SyN`, decoded.Method)
}

func TestRun_BypassManifest(t *testing.T) {
	path := writeManifest(t, boldBlock)

	stdout, logs, err := runApp(t, path, FormatMermaid)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "sdc_bypass_wf")
	assert.Contains(t, logs.String(), "pass through uncorrected")
}

func TestRun_CompositionError(t *testing.T) {
	path := writeManifest(t, boldBlock+`
fieldmap "phasediff" {
  inputs = {
    phasediff = "fmap/phasediff.nii.gz"
  }
}
`)

	_, _, err := runApp(t, path, FormatMermaid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required input")
}

func TestRun_LoadError(t *testing.T) {
	_, _, err := runApp(t, filepath.Join(t.TempDir(), "does-not-exist.hcl"), FormatMermaid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifest")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ManifestPath: "m.hcl"})
	require.NoError(t, err)
	assert.Equal(t, FormatMermaid, cfg.OutputFormat, "output format defaults to mermaid")

	_, err = NewConfig(Config{ManifestPath: "m.hcl", OutputFormat: "dot"})
	require.Error(t, err)
}
