package handlers

import (
	"net/http"

	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/models"
)

type EquipmentHandler struct {
	Catalog *equipment.Catalog
}

// Names searches the catalog by display or internal name. Without q it
// returns the first 50 entries.
func (h *EquipmentHandler) Names(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Search(r.URL.Query().Get("q"))
	if len(items) > 50 {
		items = items[:50]
	}

	names := make([]models.EquipmentName, 0, len(items))
	for _, it := range items {
		names = append(names, models.EquipmentName{
			Name:         it.Name,
			InternalName: it.InternalName,
			Clan:         it.Clan,
			Category:     it.Category,
			Type:         string(it.Type),
			BV:           it.BV,
			Heat:         it.Heat,
			Slots:        it.Slots,
		})
	}
	writeJSON(w, http.StatusOK, names)
}
