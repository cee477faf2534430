package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/shopbot/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "conv-1", "shopbot-test", 60)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "conv-1", id)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "conv-1", "shopbot-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "conv-1", "shopbot-test", -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_Validaciones(t *testing.T) {
	_, err := pkgjwt.Generate("", "conv-1", "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Generate(secret, "", "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Parse("", "abc")
	assert.Error(t, err)
}
