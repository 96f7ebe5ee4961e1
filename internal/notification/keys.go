package notification

import (
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

// Preference keys are kept byte-compatible with the ones the admin SPA used
// to write to browser storage, so an export of that storage can be imported
// as user_prefs rows.

func LastVisitKey(role string, userID uuid.UUID) string {
	return fmt.Sprintf("lastVisit_%s_%s", role, userID)
}

func ClearKey(role string, userID uuid.UUID) string {
	return fmt.Sprintf("lastClientNotificationsClear_%s_%s", role, userID)
}

func HiddenKey(typ entity.NotificationType, clientID uuid.UUID, role string, userID uuid.UUID) string {
	return fmt.Sprintf("hiddenClient_%s_%s_%s_%s", typ, clientID, role, userID)
}
