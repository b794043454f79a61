package demo

import (
	"strings"
	"time"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
	"github.com/dmitrymomot/validkit/pkg/schema"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Countries accepted in addresses.
var Countries = []string{"AT", "BE", "CH", "DE", "ES", "FR", "GB", "IT", "NL", "NO", "PL", "SE", "US"}

const (
	minSignupAge = 13
	maxTags      = 5
)

var (
	zipCode     = validator.MustMatch(`^[0-9A-Za-z][0-9A-Za-z -]{1,8}[0-9A-Za-z]$`)
	cleanString = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, sanitizer.NormalizeWhitespace)
	tagName     = sanitizer.Compose(sanitizer.Trim, sanitizer.ToKebab)
)

func optional(pred func(string) bool) func(string) bool {
	return func(s string) bool { return s == "" || pred(s) }
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// NewAddresses builds the schema for one postal address.
func NewAddresses(opts ...schema.Option) *schema.Schema[RawAddress, Address] {
	return schema.NewBuilder[RawAddress, Address]("address", opts...).
		Field("street",
			schema.Map("clean", cleanString),
			schema.Check("not_blank", validator.NotBlank).WithMessage("street is required"),
		).
		Field("city",
			schema.Map("clean", cleanString),
			schema.Check("not_blank", validator.NotBlank).WithMessage("city is required"),
			schema.Map("title", sanitizer.ToTitle),
		).
		Field("zip",
			schema.Map("upper", sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)),
			schema.Check("zip_code", zipCode).WithMessage("zip code is malformed"),
		).
		Field("country",
			schema.Map("upper", sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)),
			schema.Check("one_of(countries)", validator.OneOf(Countries...)).WithMessage("country is not supported"),
		).
		MustBuild()
}

// NewProfiles builds the schema for the public profile of a user.
func NewProfiles(opts ...schema.Option) *schema.Schema[RawProfile, Profile] {
	return schema.NewBuilder[RawProfile, Profile]("profile", opts...).
		Field("name",
			schema.Map("clean", cleanString),
			schema.Check("len_between(1, 100)", validator.LenBetween(1, 100)).WithMessage("name must be 1 to 100 characters"),
		).
		Field("birthday",
			schema.TryMap("parse_date", parseDate).WithMessage("birthday must be a YYYY-MM-DD date"),
			schema.Check("past", validator.Past).WithMessage("birthday must be in the past"),
			schema.Check("min_age(13)", validator.MinAge(minSignupAge)).WithMessage("must be at least 13 years old"),
		).
		Field("website",
			schema.Map("trim", sanitizer.Trim),
			schema.Check("url", optional(validator.URL)).WithMessage("website must be an http or https URL"),
		).
		Field("color",
			schema.Map("lower", sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)),
			schema.Check("hex_color", optional(validator.HexColor)).WithMessage("color must be a hex color"),
		).
		MustBuild()
}

// NewSignups builds the registration schema. Profiles and addresses are
// validated by their own schemas and reported under "profile." and
// "addresses.N." paths.
func NewSignups(profiles *schema.Schema[RawProfile, Profile], addresses *schema.Schema[RawAddress, Address], opts ...schema.Option) *schema.Schema[RawSignup, Signup] {
	return schema.NewBuilder[RawSignup, Signup]("signup", opts...).
		Pre(
			schema.Check("password == password_confirmation", func(r RawSignup) bool {
				return r.Password == r.Confirm
			}).WithMessage("password confirmation does not match"),
		).
		Field("id",
			schema.Map("trim", sanitizer.Trim),
			schema.TryMap("parse_uuid", sanitizer.ParseUUID).WithMessage("id must be a UUID"),
			schema.Check("uuid_version(4)", validator.UUIDVersion(4)).WithMessage("id must be a version 4 UUID"),
		).
		Field("username",
			schema.Map("normalize", sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)),
			schema.Check("username", validator.Username).WithMessage("username must be at least 3 letters, digits, '-' or '_'"),
			schema.Check("max_len(32)", validator.MaxLen(32)).WithMessage("username must be at most 32 characters"),
		).
		Field("email",
			schema.Map("normalize_email", sanitizer.NormalizeEmail),
			schema.Check("email", validator.Email).WithMessage("email is malformed"),
		).
		Field("password",
			schema.Check("strong_password", validator.StrongPassword(validator.DefaultPasswordPolicy())).
				WithMessage("password must be 8 to 128 characters from at least three character classes"),
			schema.Check("not_common_password", validator.NotCommonPassword).WithMessage("password is too common"),
		).
		Field("profile", schema.Forward(profiles)).
		Field("addresses",
			schema.Check("min_items(1)", validator.MinItems[RawAddress](1)).WithMessage("at least one address is required"),
			schema.ForwardEach(addresses),
		).
		Field("tags",
			schema.Map("normalize", sanitizer.MapSlice(tagName)),
			schema.Map("filter_empty", sanitizer.FilterEmpty),
			schema.Map("dedupe", sanitizer.Dedupe[string]),
			schema.Check("max_items(5)", validator.MaxItems[string](maxTags)).WithMessage("at most 5 tags are allowed"),
		).
		Field("accept_terms",
			schema.Check("accepted", func(b bool) bool { return b }).WithMessage("terms must be accepted"),
		).
		Hide("password", "password_confirmation").
		Post(
			schema.Check("password does not contain username", func(s Signup) bool {
				return !strings.Contains(strings.ToLower(s.Password), s.Username)
			}).WithMessage("password must not contain the username"),
		).
		MustBuild()
}
