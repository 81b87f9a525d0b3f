// Package services contains the application services of the Tá Vivo Ainda
// client: the auth flow, the daily check-in tracker, the view-mode preference
// and the medical profile store. Each persists its own namespaced key in the
// device key-value store.
package services

// Keys in the device key-value store. Each component owns exactly one key.
const (
	keySession        = "ta_vivo_ainda:session"
	keyLastPressed    = "ta_vivo_ainda:last_pressed"
	keyViewMode       = "ta_vivo_ainda:view_mode"
	keyProfile        = "ta_vivo_ainda:profile"
	keyInstallationID = "ta_vivo_ainda:installation_id"
)
