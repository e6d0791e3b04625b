package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArtifact = `{
  "labels": ["Hoax", "Valid"],
  "log_prior": {"Hoax": -0.693, "Valid": -0.693},
  "log_likelihood": {
    "Hoax":  {"viralkan": -1.0, "sebarkan": -1.2, "berita": -3.0},
    "Valid": {"viralkan": -6.0, "sebarkan": -6.0, "berita": -2.5}
  },
  "oov_log_likelihood": {"Hoax": -8.0, "Valid": -8.0}
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyLabels(t *testing.T) {
	path := writeArtifact(t, `{"labels": []}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingPrior(t *testing.T) {
	path := writeArtifact(t, `{"labels": ["Hoax"], "log_prior": {}}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	c, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hoax", "Valid"}, c.Labels())
}

func TestPredictProbabilities(t *testing.T) {
	c, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)

	probs, err := c.PredictProbabilities("viralkan sebarkan")
	require.NoError(t, err)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs["Hoax"], probs["Valid"])
}

func TestPredictLeansValidOnNeutralText(t *testing.T) {
	c, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)

	probs, err := c.PredictProbabilities("berita")
	require.NoError(t, err)
	assert.Greater(t, probs["Valid"], probs["Hoax"])
}

func TestPredictEmptyInput(t *testing.T) {
	c, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)

	_, err = c.PredictProbabilities("   ")
	assert.Error(t, err)
}

func TestPredictUnknownTokensUseOOV(t *testing.T) {
	c, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)

	probs, err := c.PredictProbabilities("kata tidak dikenal")
	require.NoError(t, err)
	// Symmetric OOV likelihoods and priors: the classes tie.
	assert.InDelta(t, probs["Hoax"], probs["Valid"], 1e-9)
}
