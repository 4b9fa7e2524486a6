package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"lumira_back_end/internal/models"
)

// SendNewOrderEmail prévient la boutique qu'une commande vient d'être passée.
// Appelé en goroutine après le checkout : un échec SMTP est loggé, jamais
// remonté au client.
func SendNewOrderEmail(order models.Order) {
	to := os.Getenv("SHOP_NOTIFY_EMAIL")
	if to == "" {
		return
	}

	msg := mail.NewMsg()
	if err := msg.From("noreply@lumira.ma"); err != nil {
		log.Println("❌ Erreur adresse expéditeur:", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("❌ Erreur adresse destinataire:", err)
		return
	}
	msg.Subject(fmt.Sprintf("🛍️ Nouvelle commande de %s — %.2f MAD", order.CustomerName, order.Total))
	msg.SetBodyString(mail.TypeTextHTML, newOrderHTML(order))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("❌ Erreur client SMTP:", err)
		return
	}

	if err := client.DialAndSend(msg); err != nil {
		log.Println("❌ Échec envoi e-mail commande:", err)
		return
	}
	log.Println("📤 Notification de commande envoyée à", to)
}

func newOrderHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f MAD</td>
				<td>%.2f MAD</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Nouvelle commande</h2>
		<p><strong>Client :</strong> %s<br>
		<strong>Téléphone :</strong> %s<br>
		<strong>Ville :</strong> %s<br>
		<strong>Adresse :</strong> %s</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left;">Produit</th>
					<th style="padding: 10px; text-align: left;">Quantité</th>
					<th style="padding: 10px; text-align: left;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total : %.2f MAD</strong></p>
	</div>
</body>
</html>`, order.CustomerName, order.Phone, order.City, order.Address, itemsHTML, order.Total)
}
