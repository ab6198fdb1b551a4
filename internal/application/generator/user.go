package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// Proporción de ADMIN entre los usuarios adicionales al primero de cada negocio.
const adminRatio = 0.3

// UserGenerator produce usuarios repartidos entre negocios, con al menos un
// ADMIN por negocio, emails únicos y un hash bcrypt real de la contraseña demo.
type UserGenerator struct {
	rng          *rand.Rand
	passwordHash string
}

// NewUserGenerator construye el generador. La contraseña demo se hashea una
// sola vez y el hash se comparte entre todos los usuarios generados.
func NewUserGenerator(rng *rand.Rand, demoPassword string) (*UserGenerator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña demo: %w", err)
	}
	return &UserGenerator{rng: rng, passwordHash: string(hash)}, nil
}

// Generate crea entre min y max usuarios por negocio (más para negocios
// grandes). IDs secuenciales desde 1; ~95% de los usuarios quedan activos.
func (g *UserGenerator) Generate(businesses []entity.Business, minPerBusiness, maxPerBusiness int) []entity.User {
	var users []entity.User
	usedEmails := make(map[string]bool)
	id := 1

	for _, business := range businesses {
		var count int
		switch business.Size {
		case entity.SizeLarge:
			count = randBetween(g.rng, maxPerBusiness, maxPerBusiness+2)
		case entity.SizeMedium:
			count = randBetween(g.rng, minPerBusiness+1, maxPerBusiness)
		default:
			count = randBetween(g.rng, minPerBusiness, minPerBusiness+1)
		}

		for i := 0; i < count; i++ {
			firstName := pick(g.rng, firstNames)
			lastName := pick(g.rng, lastNames)

			// El primer usuario de cada negocio siempre es ADMIN
			role := entity.RoleUser
			if i == 0 || g.rng.Float64() < adminRatio {
				role = entity.RoleAdmin
			}

			isActive := g.rng.Float64() > 0.05
			createdAt := business.CreatedAt.AddDate(0, 0, randBetween(g.rng, 1, 120))

			user := entity.User{
				ID:           id,
				Email:        g.uniqueEmail(firstName, lastName, usedEmails),
				PasswordHash: g.passwordHash,
				FullName:     fmt.Sprintf("%s %s", firstName, lastName),
				FirstName:    firstName,
				LastName:     lastName,
				BusinessID:   business.ID,
				Role:         role,
				IsActive:     isActive,
				PhoneNumber:  g.phoneNumber(),
				CreatedAt:    createdAt,
			}
			if isActive {
				lastLogin := createdAt.AddDate(0, 0, g.rng.Intn(31))
				user.LastLogin = &lastLogin
			}

			users = append(users, user)
			id++
		}
	}
	return users
}

// uniqueEmail arma nombre.apellido@dominio sin tildes; ante colisión agrega
// un sufijo numérico creciente.
func (g *UserGenerator) uniqueEmail(firstName, lastName string, used map[string]bool) string {
	base := fmt.Sprintf("%s.%s", asciiLower(firstName), asciiLower(lastName))
	domain := pick(g.rng, emailDomains)

	email := fmt.Sprintf("%s@%s", base, domain)
	for counter := 1; used[email]; counter++ {
		email = fmt.Sprintf("%s%d@%s", base, counter, domain)
	}
	used[email] = true
	return email
}

// phoneNumber genera un celular colombiano (prefijo 3xx).
func (g *UserGenerator) phoneNumber() string {
	return fmt.Sprintf("3%d%d", randBetween(g.rng, 10, 99), randBetween(g.rng, 1_000_000, 9_999_999))
}

var diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// asciiLower baja a minúsculas y elimina marcas diacríticas (García -> garcia).
func asciiLower(s string) string {
	out, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
