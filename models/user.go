package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserProfile is a SkillSwap member with the skills they can teach and the
// skills they want to learn. Email is the application-level identity key:
// creating a user with an existing email returns the stored profile as-is.
type UserProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Bio          *string            `bson:"bio,omitempty" json:"bio"`
	AvatarURL    *string            `bson:"avatar_url,omitempty" json:"avatar_url"`
	TeachSkills  []string           `bson:"teach_skills" json:"teach_skills"`
	LearnSkills  []string           `bson:"learn_skills" json:"learn_skills"`
	Location     *string            `bson:"location,omitempty" json:"location"`
	Availability *string            `bson:"availability,omitempty" json:"availability"`
	SkillCoins   int                `bson:"skillcoins" json:"skillcoins"`
}

// UserCreate is the POST /api/users payload. Fields other than name and
// email are optional and ignored entirely when the email already exists.
type UserCreate struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Bio          *string  `json:"bio"`
	AvatarURL    *string  `json:"avatar_url"`
	TeachSkills  []string `json:"teach_skills"`
	LearnSkills  []string `json:"learn_skills"`
	Location     *string  `json:"location"`
	Availability *string  `json:"availability"`
}

// Profile builds the UserProfile to insert for a first-time email.
func (p UserCreate) Profile() *UserProfile {
	teach := p.TeachSkills
	if teach == nil {
		teach = []string{}
	}
	learn := p.LearnSkills
	if learn == nil {
		learn = []string{}
	}
	return &UserProfile{
		Name:         p.Name,
		Email:        p.Email,
		Bio:          p.Bio,
		AvatarURL:    p.AvatarURL,
		TeachSkills:  teach,
		LearnSkills:  learn,
		Location:     p.Location,
		Availability: p.Availability,
		SkillCoins:   0,
	}
}
