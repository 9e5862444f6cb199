package handler

import (
	"fmt"
	"time"

	"vocablayers/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLayers shows the list of layers
func (h *Handler) handleLayers(c tele.Context) error {
	h.ResetState(c.Sender().ID)

	layers := h.store.Layers()

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, layer := range layers {
		btnText := fmt.Sprintf("%s (%d)", layer.Name, len(layer.Words))
		rows = append(rows, markup.Row(markup.Data(btnText, prefixLayer+layer.ID)))
	}
	rows = append(rows, markup.Row(btnNewLayer), markup.Row(btnBack))
	markup.Inline(rows...)

	return h.render(c, layerListText(layers), markup)
}

// handleNewLayer asks for the name of a new layer
func (h *Handler) handleNewLayer(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingLayerName})
	return h.render(c, "✏️ Send a name for the new layer", cancelMarkup())
}

// createLayer stores a layer named by the user's message
func (h *Handler) createLayer(c tele.Context, name string) error {
	layer := h.store.AddLayer(name)

	h.logger.Info("Layer created",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("layer_id", layer.ID),
		zap.String("name", name),
	)

	h.ResetState(c.Sender().ID)
	return h.showLayer(c, layer)
}

// handleLayerView shows words of the selected layer
func (h *Handler) handleLayerView(c tele.Context, layerID string) error {
	h.ResetState(c.Sender().ID)

	layer, ok := h.store.GetLayerByID(layerID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Layer not found", ShowAlert: true})
	}
	return h.showLayer(c, layer)
}

func (h *Handler) showLayer(c tele.Context, layer domain.Layer) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("➕ Add words", prefixAddWord+layer.ID),
			markup.Data("🎮 Practice", prefixPlay+layer.ID),
		),
		markup.Row(markup.Data("🗑 Delete layer", prefixDeleteLayer+layer.ID)),
		markup.Row(btnLayers, btnBack),
	)

	return h.render(c, layerText(layer, time.Now()), markup)
}

// handleDeleteLayer removes the layer with all its words
func (h *Handler) handleDeleteLayer(c tele.Context, layerID string) error {
	if !h.store.DeleteLayer(layerID) {
		return c.Respond(&tele.CallbackResponse{Text: "Layer not found", ShowAlert: true})
	}

	h.logger.Info("Layer deleted",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("layer_id", layerID),
	)
	return h.handleLayers(c)
}
