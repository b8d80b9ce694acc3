package remindlib

// Partition splits a reminder collection into active and expired halves.
// Every reminder appears in exactly one half.
type Partition struct {
	// Active holds reminders whose due time has not passed yet.
	Active []Reminder `json:"active"`
	// Expired holds reminders whose due time has passed, whether or not
	// they have been successfully triggered.
	Expired []Reminder `json:"expired"`
}

// PartitionAt classifies reminders against nowMillis. A reminder is
// expired iff its due time has passed; the triggered flag plays no part.
// Input order is preserved within each half.
func PartitionAt(reminders []Reminder, nowMillis int64) Partition {
	var p Partition
	for _, rem := range reminders {
		if rem.Due(nowMillis) {
			p.Expired = append(p.Expired, rem)
		} else {
			p.Active = append(p.Active, rem)
		}
	}
	return p
}
