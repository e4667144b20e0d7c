// Package gate holds the role and ownership checks run before every data
// operation. Each check is a pure function of the verified identity and the
// loaded target; nil means allowed.
//
// Where a missing resource and a foreign resource would be told apart, the
// checks answer Forbidden for both so that ids of other tenants do not leak.
package gate

import (
	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
)

func RequireMaster(id auth.Identity, action string) error {
	if !id.IsMaster() {
		return apperr.Forbidden("only masters can %s", action)
	}
	return nil
}

func RequirePlayer(id auth.Identity, action string) error {
	if !id.IsPlayer() {
		return apperr.Forbidden("only players can %s", action)
	}
	return nil
}

// OwnsLobby allows the master who created lobby.
func OwnsLobby(id auth.Identity, lobby *models.Lobby) error {
	if lobby == nil || !id.IsMaster() || lobby.MasterID != id.UserID {
		return apperr.Forbidden("lobby not found or not owned by you")
	}
	return nil
}

// CanBeInvited allows existing, non-master targets.
func CanBeInvited(target *models.User) error {
	if target == nil {
		return apperr.NotFound("player not found")
	}
	if target.Role == models.RoleMaster {
		return apperr.Validation("a master cannot be invited")
	}
	return nil
}

// IsInviteTarget allows only the invited player to answer or delete an invite.
func IsInviteTarget(id auth.Identity, invite *models.Invite) error {
	if invite == nil {
		return apperr.NotFound("invite not found")
	}
	if invite.PlayerID != id.UserID {
		return apperr.Forbidden("you are not allowed to modify this invite")
	}
	return nil
}

// CanAnswer checks the invite may still move to next.
func CanAnswer(invite *models.Invite, next models.InviteStatus) error {
	if !invite.Status.CanTransition(next) {
		return apperr.InvalidState("invite already %s", invite.Status)
	}
	return nil
}

// IsMember requires an accepted invite for the lobby.
func IsMember(accepted *models.Invite) error {
	if accepted == nil || accepted.Status != models.InviteAccepted {
		return apperr.Forbidden("you are not in this lobby")
	}
	return nil
}

// OwnsSheet allows only the player who created sheet.
func OwnsSheet(id auth.Identity, sheet *models.CharacterSheet) error {
	if sheet == nil || sheet.PlayerID != id.UserID {
		return apperr.Forbidden("character sheet not found or not yours")
	}
	return nil
}
