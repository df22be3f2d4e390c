package configs

// Suggestions controls how proposals are validated before they reach the store.
//
// RequireDescription selects between the hardened contract (description is
// mandatory) and the relaxed one (description may be empty).
type Suggestions struct {
	RequireDescription   bool `env:"SUGGESTIONS_REQUIRE_DESCRIPTION" envDefault:"true"`
	MaxNameLength        int  `env:"SUGGESTIONS_MAX_NAME_LENGTH" envDefault:"200"`
	MaxDescriptionLength int  `env:"SUGGESTIONS_MAX_DESCRIPTION_LENGTH" envDefault:"2000"`
	MaxUsernameLength    int  `env:"SUGGESTIONS_MAX_USERNAME_LENGTH" envDefault:"64"`
}
