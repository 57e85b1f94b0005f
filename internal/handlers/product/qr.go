package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// ProductQR renders the product's external order URL as a PNG QR code, for
// the printed table tents in the shop.
func (h *Handler) ProductQR(c *gin.Context) {
	key := c.Param("slug")
	p, ok := h.Store.GetBySlug(key)
	if !ok {
		p, ok = h.Store.GetByID(key)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produkten hittades inte"})
		return
	}

	png, err := qrcode.Encode(p.CommerceURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kunde inte generera QR-kod"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
