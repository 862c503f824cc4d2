package components

import (
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

type NotificationKind string

const (
	NotifyDoorLocked      NotificationKind = "door_locked"
	NotifyDoorOpened      NotificationKind = "door_opened"
	NotifyPickedUp        NotificationKind = "picked_up"
	NotifyLevelTransition NotificationKind = "level_transition"
	NotifyPlayerHurt      NotificationKind = "player_hurt"
	NotifyEnemyKilled     NotificationKind = "enemy_killed"
)

// Notification is a rule outcome for HUD and audio listeners. It lives only
// for the tick that emitted it.
type Notification struct {
	Kind        NotificationKind
	EntityID    int // object id of the entity involved, 0 for none
	Item        CollectibleKind
	KeyType     leveldata.KeyType
	Count       int // keys missing, score gained, hp healed or damage taken
	Destination string
	Message     string
}

// NotificationsData collects the notifications emitted during one tick.
type NotificationsData struct {
	List []Notification
}

func (n *NotificationsData) Emit(note Notification) {
	n.List = append(n.List, note)
}

func (n *NotificationsData) Clear() {
	n.List = n.List[:0]
}

var Notifications = donburi.NewComponentType[NotificationsData]()
