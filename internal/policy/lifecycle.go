package policy

import (
	"time"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

// CanDeleteMessage decides whether the actor may delete msg at the given
// instant. Admins moderate the wall without any time limit; the sender gets
// a short window after creation, then the message becomes immutable.
// Pure function of (message, actor, now) so tests inject a fixed clock.
func CanDeleteMessage(msg *domain.Message, actor *domain.User, now time.Time) bool {
	if msg == nil || actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor.Username != msg.FromUsername {
		return false
	}
	return now.Sub(msg.CreatedAt) < domain.DeleteWindow
}

// CanDeleteComment allows the comment author and admins.
func CanDeleteComment(c *domain.Comment, actor *domain.User) bool {
	if c == nil || actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.Username == c.Username
}
