package models

// All lists the tables in parent -> child order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&RoomCategory{},
		&Room{},
		&Stay{},
		&StayRoom{},
		&AccountEntry{},
		&ResortSetting{},
	}
}
