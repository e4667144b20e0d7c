package models

// Credentials is the body of POST /login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /register
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LobbyCreation to create a new lobby
type LobbyCreation struct {
	Name string `json:"name"`
}

// InviteCreation is sent by a master to invite a player by email
type InviteCreation struct {
	LobbyID     Loose  `json:"lobbyId"`
	PlayerEmail string `json:"playerEmail"`
}

// InviteAnswer is the body of PATCH /invites/:id
type InviteAnswer struct {
	Status string `json:"status"`
}

// ItemInput is one inventory entry as sent by clients. Both fields are
// coerced rather than validated.
type ItemInput struct {
	ItemName Loose `json:"itemName"`
	Quantity Loose `json:"quantity"`
}

// SheetInput is the body of the character sheet create and update routes.
// Every field keeps track of whether it was present in the request.
type SheetInput struct {
	LobbyID      Loose `json:"lobbyId"`
	Name         Loose `json:"name"`
	Class        Loose `json:"class"`
	Subclass     Loose `json:"subclass"`
	Level        Loose `json:"level"`
	XP           Loose `json:"xp"`
	Strength     Loose `json:"strength"`
	Constitution Loose `json:"constitution"`
	Dexterity    Loose `json:"dexterity"`
	Intelligence Loose `json:"intelligence"`
	Wisdom       Loose `json:"wisdom"`
	Charisma     Loose `json:"charisma"`
	Inventory    Loose `json:"inventory"`
}
