package storeinfo

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wneessen/go-mail"

	"masterjacobs_backend/internal/config"
	"masterjacobs_backend/internal/models"
)

// Contact relays the landing page contact form to the bakery mailbox.
func (h *Handler) Contact(c *gin.Context) {
	var in models.ContactMessage
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Namn, e-post och meddelande krävs"})
		return
	}

	if os.Getenv("SMTP_HOST") == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Kontaktformuläret är inte konfigurerat"})
		return
	}

	if err := sendContactMail(in); err != nil {
		log.Printf("❌ Kunde inte skicka kontaktmeddelande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Meddelandet kunde inte skickas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tack för ditt meddelande! Vi återkommer så snart vi kan."})
}

func sendContactMail(in models.ContactMessage) error {
	msg := mail.NewMsg()
	if err := msg.From(config.Getenv("SMTP_FROM", "noreply@masterjacobs.se")); err != nil {
		return err
	}
	if err := msg.To(config.Getenv("CONTACT_TO", "info@masterjacobs.se")); err != nil {
		return err
	}
	if err := msg.ReplyTo(in.Email); err != nil {
		return err
	}
	msg.Subject("Meddelande från hemsidan: " + in.Name)
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Från: %s <%s>\n\n%s", in.Name, in.Email, in.Message))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(config.AtoiEnv("SMTP_PORT", 587)),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Skickar kontaktmeddelande till bageriet")
	return client.DialAndSend(msg)
}
