package models

import "time"

// Reaction kinds. The values are part of the wire contract of the toggle
// endpoint and must match what clients send in tipo_reacao.
const (
	ReactionCurtir    = "curtir"
	ReactionAmei      = "amei"
	ReactionEngracado = "engraçado"
	ReactionNaoGostei = "não_gostei"
)

// ReactionKinds lists every accepted reaction kind in display order.
var ReactionKinds = []string{ReactionCurtir, ReactionAmei, ReactionEngracado, ReactionNaoGostei}

// ValidReactionKind reports whether kind is one of the four accepted values.
func ValidReactionKind(kind string) bool {
	for _, k := range ReactionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ReactionEmoji maps a reaction kind to its display emoji.
func ReactionEmoji(kind string) string {
	switch kind {
	case ReactionAmei:
		return "❤️"
	case ReactionEngracado:
		return "😂"
	case ReactionNaoGostei:
		return "👎"
	default:
		return "👍"
	}
}

// Reaction records a user's reaction to a post.
// The combination of UserID and PostID must be unique.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"post_id"`
	Kind      string    `gorm:"size:50;not null;default:'curtir'" json:"kind"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}
