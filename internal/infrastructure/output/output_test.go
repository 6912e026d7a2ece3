package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
	"github.com/gameforge-dev/gameforge/internal/domain/builders"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	domainservices "github.com/gameforge-dev/gameforge/internal/domain/services"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

func sampleGameResponse() *dto.BuildGameResponse {
	game := entities.Game{
		Graphics: values.Some(builders.SciFiGraphics),
		Sound:    values.Some(builders.SciFiSound),
	}
	return &dto.BuildGameResponse{
		Record: entities.NewBuildRecord(builders.ThemeSciFi, domainservices.RecipeMinimal.Name, entities.Overrides{}, game),
	}
}

func sampleMatrix() *dto.MatrixResponse {
	return &dto.MatrixResponse{Rows: []dto.MatrixRow{
		{Theme: "fantasy", Recipe: "minimal", Game: entities.Game{
			Graphics: values.Some(builders.FantasyGraphics),
			Sound:    values.Some(builders.FantasySound),
		}},
	}}
}

func sampleCatalog() *dto.CatalogResponse {
	return &dto.CatalogResponse{
		Themes: []dto.ThemeInfo{{
			Name:     "fantasy",
			Defaults: builders.NewFantasyBuilder().Defaults(),
		}},
		Recipes: []domainservices.Recipe{domainservices.RecipeMinimal},
	}
}

func TestTableFormatter_FormatGame(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = false

	require.NoError(t, f.FormatGame(sampleGameResponse()))

	out := buf.String()
	assert.Contains(t, out, "Theme: scifi  Recipe: minimal")
	assert.Contains(t, out, "Graphics: "+builders.SciFiGraphics)
	assert.Contains(t, out, "Storyline: (none)")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatter_FormatMatrix(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = false

	require.NoError(t, f.FormatMatrix(sampleMatrix()))
	assert.Contains(t, buf.String(), "fantasy / minimal")
	assert.Contains(t, buf.String(), "1 games")

	buf.Reset()
	require.NoError(t, f.FormatMatrix(&dto.MatrixResponse{}))
	assert.Equal(t, "No games matched.\n", buf.String())
}

func TestTableFormatter_FormatCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = false

	require.NoError(t, f.FormatCatalog(sampleCatalog()))
	out := buf.String()
	assert.Contains(t, out, "Themes:")
	assert.Contains(t, out, "Sound: "+builders.FantasySound)
	assert.Contains(t, out, "minimal: graphics, sound")
}

func TestTableFormatter_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).FormatMatrix(sampleMatrix()))
	assert.Contains(t, buf.String(), colorBold)
}

func TestJSONFormatter_FormatGame(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, true).FormatGame(sampleGameResponse()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "scifi", decoded["theme"])
	assert.Equal(t, "minimal", decoded["recipe"])
	game := decoded["game"].(map[string]interface{})
	assert.Equal(t, builders.SciFiGraphics, game["graphics"])
	assert.Nil(t, game["storyline"])
	assert.Contains(t, game, "storyline")
}

func TestJSONFormatter_FormatCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, false).FormatCatalog(sampleCatalog()))
	assert.Contains(t, buf.String(), `"steps":["graphics","sound"]`)
}

func TestYAMLFormatter_FormatMatrix(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).FormatMatrix(sampleMatrix()))

	out := buf.String()
	assert.Contains(t, out, "theme: fantasy")
	assert.Contains(t, out, "graphics: "+builders.FantasyGraphics)
	assert.Contains(t, out, "storyline: null")
}

func TestYAMLFormatter_FormatGame(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).FormatGame(sampleGameResponse()))
	assert.Contains(t, buf.String(), "theme: scifi")
}

func sampleBatchResponse() *dto.BuildGameResponse {
	first := entities.NewBuildRecord(builders.ThemeFantasy, values.RecipeName{}, entities.Overrides{},
		entities.Game{Graphics: values.Some("first")})
	second := entities.NewBuildRecord(builders.ThemeFantasy, values.RecipeName{}, entities.Overrides{},
		entities.Game{Graphics: values.Some("second")})
	return &dto.BuildGameResponse{
		Record: second,
		Batch:  []*entities.BuildRecord{second, first},
	}
}

func TestTableFormatter_FormatGameBatch(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = false

	require.NoError(t, f.FormatGame(sampleBatchResponse()))

	out := buf.String()
	assert.Contains(t, out, "Graphics: second")
	assert.Contains(t, out, "Graphics: first")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("second")), bytes.Index(buf.Bytes(), []byte("Graphics: first")))
	assert.Contains(t, out, "Recipe: (none)")
	assert.Contains(t, out, "2 games")
}

func TestJSONFormatter_FormatGameBatch(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, false).FormatGame(sampleBatchResponse()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "second", decoded[0]["game"].(map[string]interface{})["graphics"])
}

func TestTableFormatter_FormatMatrixRecorded(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = false

	resp := sampleMatrix()
	resp.Recorded = 4
	require.NoError(t, f.FormatMatrix(resp))
	assert.Contains(t, buf.String(), "1 games (4 recorded)")
}
