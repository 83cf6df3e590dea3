package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest drops manifest content into a temp dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const fullManifest = `
fieldmap "phasediff" {
  inputs = {
    phasediff  = "fmap/phasediff.nii.gz"
    magnitude1 = "fmap/magnitude1.nii.gz"
    magnitude2 = "fmap/magnitude2.nii.gz"
  }
}

fieldmap "epi" {
  inputs = {
    epi = "fmap/dir-PA_epi.nii.gz"
  }
  metadata = {
    PhaseEncodingDirection = "j-"
  }
}

bold {
  name_source    = "func/sub-03_task-rest_bold.nii.gz"
  bold_ref       = "work/bold_ref.nii.gz"
  bold_ref_brain = "work/bold_ref_brain.nii.gz"
  bold_mask      = "work/bold_mask.nii.gz"
  t1_brain       = "anat/t1_brain.nii.gz"
  t1_to_template_reverse_transform = "anat/reverse.h5"
  metadata = {
    RepetitionTime         = 2.0
    SliceTiming            = [0.0, 0.5, 1.0]
    PhaseEncodingDirection = "j"
  }
}

correction {
  use_syn      = true
  omp_nthreads = 8
  template     = "MNI152NLin2009cAsym"
}
`

func TestLoad_FullManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "manifest.hcl", fullManifest)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, model.Fieldmaps, 2)
	phasediff := model.Fieldmaps[0]
	assert.Equal(t, "phasediff", phasediff.Type)
	assert.Equal(t, "fmap/phasediff.nii.gz", phasediff.Inputs["phasediff"])
	assert.Equal(t, "fmap/magnitude2.nii.gz", phasediff.Inputs["magnitude2"])
	assert.Nil(t, phasediff.Metadata)

	epi := model.Fieldmaps[1]
	assert.Equal(t, "epi", epi.Type)
	assert.Equal(t, "j-", epi.Metadata["PhaseEncodingDirection"])

	require.NotNil(t, model.Bold)
	assert.Equal(t, "func/sub-03_task-rest_bold.nii.gz", model.Bold.NameSource)
	assert.Equal(t, "anat/reverse.h5", model.Bold.T1ToTemplateReverseTransform)
	assert.Equal(t, 2.0, model.Bold.Metadata["RepetitionTime"])
	assert.Equal(t, []any{0.0, 0.5, 1.0}, model.Bold.Metadata["SliceTiming"])

	require.NotNil(t, model.Correction)
	assert.True(t, model.Correction.UseSyn)
	assert.False(t, model.Correction.ForceSyn)
	assert.True(t, model.Correction.FmapDemean, "defaults fill attributes the block leaves out")
	assert.Equal(t, 8, model.Correction.OmpNthreads)
	assert.Equal(t, "MNI152NLin2009cAsym", model.Correction.Template)
}

func TestLoad_CorrectionDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "manifest.hcl", `
bold {
  name_source    = "func/bold.nii.gz"
  bold_ref       = "work/ref.nii.gz"
  bold_ref_brain = "work/ref_brain.nii.gz"
  bold_mask      = "work/mask.nii.gz"
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, model.Correction, "a missing correction block yields defaults")
	assert.False(t, model.Correction.UseSyn)
	assert.True(t, model.Correction.FmapDemean)
	assert.Equal(t, 1, model.Correction.OmpNthreads)
	assert.Empty(t, model.Fieldmaps)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a_fieldmaps.hcl", `
fieldmap "fieldmap" {
  inputs = {
    fieldmap  = "fmap/fieldmap.nii.gz"
    magnitude = "fmap/magnitude.nii.gz"
  }
}
`)
	writeManifest(t, dir, "b_bold.hcl", `
bold {
  name_source    = "func/bold.nii.gz"
  bold_ref       = "work/ref.nii.gz"
  bold_ref_brain = "work/ref_brain.nii.gz"
  bold_mask      = "work/mask.nii.gz"
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Fieldmaps, 1)
	assert.Equal(t, "fieldmap", model.Fieldmaps[0].Type)
	require.NotNil(t, model.Bold)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "broken.hcl", `bold { name_source = `)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("missing bold block", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "nobold.hcl", `
fieldmap "epi" {
  inputs = { epi = "e.nii.gz" }
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing the required bold block")
	})

	t.Run("duplicate bold block across files", func(t *testing.T) {
		dir := t.TempDir()
		boldBlock := `
bold {
  name_source    = "func/bold.nii.gz"
  bold_ref       = "work/ref.nii.gz"
  bold_ref_brain = "work/ref_brain.nii.gz"
  bold_mask      = "work/mask.nii.gz"
}
`
		writeManifest(t, dir, "a.hcl", boldBlock)
		writeManifest(t, dir, "b.hcl", boldBlock)

		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate bold block")
	})

	t.Run("no manifests found", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .hcl manifest files")
	})
}
