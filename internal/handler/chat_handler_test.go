package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubot/edubot-api/internal/models"
)

func TestChatHandlerDispatchEnroll(t *testing.T) {
	svcs := newTestServices(catalog(), nil)
	h := NewChatHandler(svcs.chat)

	payload, _ := json.Marshal(models.ChatMessage{Text: "inscribirme en MAT101"})
	c, w := newGinContext(t, http.MethodPost, "/chat", payload)
	h.Dispatch(c)

	require.Equal(t, http.StatusOK, w.Code)
	var reply models.ChatReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, models.IntentEnroll, reply.Type)
	assert.Equal(t, "Inscripción realizada en MAT101", reply.Message)
}

func TestChatHandlerDispatchHelp(t *testing.T) {
	svcs := newTestServices(catalog(), nil)
	h := NewChatHandler(svcs.chat)

	payload, _ := json.Marshal(models.ChatMessage{Text: "hola"})
	c, w := newGinContext(t, http.MethodPost, "/chat", payload)
	h.Dispatch(c)

	require.Equal(t, http.StatusOK, w.Code)
	var reply models.ChatReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, models.IntentHelp, reply.Type)
	assert.NotEmpty(t, reply.Message)
}

func TestChatHandlerDispatchRequiresText(t *testing.T) {
	svcs := newTestServices(catalog(), nil)
	h := NewChatHandler(svcs.chat)

	c, w := newGinContext(t, http.MethodPost, "/chat", []byte(`{}`))
	h.Dispatch(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
