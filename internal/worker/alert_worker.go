package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts.
// Sends a notification email to the configured alert address via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/infra"
)

const JobTypeLowStockAlert = "low_stock_alert"

// LowStockAlertPayload is the job envelope sent to QueueAlerts.
type LowStockAlertPayload struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	TotalStock int    `json:"total_stock"`
}

// AlertWorker emails low-stock notifications.
type AlertWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertWorker(mailer *infra.Mailer, to string) *AlertWorker {
	return &AlertWorker{mailer: mailer, to: to}
}

func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("alert_worker: invalid payload: %w", err)
	}
	if w.to == "" {
		// No recipient configured. Treat as done rather than retrying forever.
		return nil
	}

	subject := fmt.Sprintf("Stock faible: %s", payload.SKU)
	body := fmt.Sprintf(
		"Le produit %s (%s) est presque épuisé.\nStock restant: %d unités.\n",
		payload.Name, payload.SKU, payload.TotalStock,
	)
	return w.mailer.Send(w.to, subject, body)
}
