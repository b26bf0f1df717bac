package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/turkce-kelime/cekim"
	"github.com/turkce-kelime/cekim/internal/dictstore"
)

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandleConjugate(t *testing.T) {
	h := handleConjugate(cekim.New(), zap.NewNop())

	rec := get(t, h, "/api/conjugate?lemma=gelmek")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var table cekim.ConjugationTable
	decode(t, rec, &table)
	assert.Equal(t, "gelmek", table.Lemma)
	past := table.Tense("past")
	require.NotNil(t, past)
	assert.Equal(t, "geldim", past.Persons[cekim.PersonBen].Positive)

	rec = get(t, h, "/api/conjugate?lemma=gelmek&compound=true")
	decode(t, rec, &table)
	require.NotNil(t, table.Tense("pastContinuous"))
}

func TestHandleConjugateMissingLemma(t *testing.T) {
	rec := get(t, handleConjugate(cekim.New(), zap.NewNop()), "/api/conjugate")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleConjugateForm(t *testing.T) {
	h := handleConjugateForm(cekim.New(), zap.NewNop())

	rec := get(t, h, "/api/conjugate/form?lemma=gelmek&tense=past&person=ben")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decode(t, rec, &resp)
	assert.Equal(t, "geldim", resp["form"])

	rec = get(t, h, "/api/conjugate/form?lemma=gelmek&tense=aorist&person=2sg&polarity=negative")
	decode(t, rec, &resp)
	assert.Equal(t, "gelmezsin", resp["form"])

	for _, target := range []string{
		"/api/conjugate/form?tense=past&person=ben",
		"/api/conjugate/form?lemma=gelmek&tense=subjunctive&person=ben",
		"/api/conjugate/form?lemma=gelmek&tense=past&person=we",
		"/api/conjugate/form?lemma=gelmek&tense=past&person=ben&polarity=maybe",
	} {
		rec = get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandleDeinflect(t *testing.T) {
	h := handleDeinflect(cekim.New(), zap.NewNop())

	rec := get(t, h, "/api/deinflect?word=geliyorum")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Word    string               `json:"word"`
		Results []cekim.Deinflection `json:"results"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "geliyorum", resp.Word)
	require.NotEmpty(t, resp.Results)
	found := false
	for _, d := range resp.Results {
		if d.DictionaryForm == "gelmek" {
			found = true
		}
	}
	assert.True(t, found, "no gelmek candidate")

	rec = get(t, h, "/api/deinflect")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLookup(t *testing.T) {
	store, err := dictstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Put(context.Background(),
		cekim.Entry{Word: "gelmek", POS: "verb", Gloss: "to come"}))

	h := handleLookup(cekim.NewLookup(store, cekim.New(), nil), zap.NewNop())

	rec := get(t, h, "/api/lookup?q=geliyorum")
	require.Equal(t, http.StatusOK, rec.Code)
	var res cekim.LookupResult
	decode(t, rec, &res)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "gelmek", res.Entry.Word)

	rec = get(t, h, "/api/lookup?q=zzz")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/api/lookup")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGlosses(t *testing.T) {
	rec := get(t, handleGlosses(cekim.New(), zap.NewNop()), "/api/glosses")
	require.Equal(t, http.StatusOK, rec.Code)

	var labels map[string]string
	decode(t, rec, &labels)
	assert.Equal(t, "şimdiki zaman", labels["present"])
}
