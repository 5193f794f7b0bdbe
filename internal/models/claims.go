package models

// UserClaims is the identity-side claim set for one account, stored in the
// user_claims collection and keyed by the user id hex. Tokens issued at login
// embed the admin claim from here; the isAdmin field on User is only a
// denormalized display copy.
type UserClaims struct {
	UID    string                 `bson:"_id" json:"uid"`
	Claims map[string]interface{} `bson:"claims" json:"claims"`
}

// Admin reports whether the claim set carries admin == true.
func (c UserClaims) Admin() bool {
	v, ok := c.Claims["admin"].(bool)
	return ok && v
}
