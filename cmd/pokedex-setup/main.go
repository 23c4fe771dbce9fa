package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"pokedex-server/confs"
	"pokedex-server/db"
	"pokedex-server/entities"
	"pokedex-server/repositories"
	"pokedex-server/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/crypto/bcrypt"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepConfirmReset step = iota
	stepEnteringName
	stepEnteringUsername
	stepEnteringEmail
	stepEnteringPassword
	stepSeeding
	stepComplete
	stepFailed
)

type model struct {
	step          step
	name          string
	username      string
	email         string
	password      string
	currentInput  string
	message       string
	quitting      bool
	seededStarter int
}

type seedDoneMsg struct{ starters int }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepConfirmReset}
}

func (m model) Init() tea.Cmd {
	return nil
}

// entering reports whether the model is on a free-text input step.
func (m model) entering() bool {
	switch m.step {
	case stepEnteringName, stepEnteringUsername, stepEnteringEmail, stepEnteringPassword:
		return true
	}
	return false
}

// starters are the unowned pokemons every fresh database begins with.
// Squirtle gets today's date at seed time.
var starters = []entities.Pokemon{
	{Name: "Squirtle", Type: "Water", Ability: "Torrent"},
	{Name: "Charmander", Type: "Fire", Ability: "Blaze", DateCaught: "2024-01-14"},
	{Name: "Pikachu", Type: "Electric", Ability: "Static", DateCaught: "2023-12-25"},
}

// seedDatabase drops and recreates the schema, registers the admin
// trainer, and inserts the starter pokemons.
func seedDatabase(name, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := confs.LoadConfig(); err != nil {
			return errMsg{err}
		}

		database, err := db.Connect()
		if err != nil {
			return errMsg{err}
		}

		gdb := database.GetDB()
		if err := gdb.Migrator().DropTable(&entities.Pokemon{}, &entities.Trainer{}); err != nil {
			return errMsg{fmt.Errorf("failed to reset schema: %w", err)}
		}
		if err := gdb.AutoMigrate(&entities.Trainer{}, &entities.Pokemon{}); err != nil {
			return errMsg{fmt.Errorf("failed to recreate schema: %w", err)}
		}

		trainerRepo := repositories.NewTrainerPgRepository(database)
		pokemonRepo := repositories.NewPokemonPgRepository(database)

		// Register through the usecase so the admin account obeys the
		// same username and password rules as everyone else.
		trainerUC := usecases.NewTrainerUseCase(trainerRepo, pokemonRepo)
		trainer, err := trainerUC.Register(usecases.TrainerInput{
			Name:     name,
			Username: username,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return errMsg{fmt.Errorf("failed to create admin trainer: %w", err)}
		}

		trainer.Admin = true
		if err := trainerRepo.Update(trainer); err != nil {
			return errMsg{fmt.Errorf("failed to flag admin trainer: %w", err)}
		}

		seeded := 0
		for _, starter := range starters {
			pokemon := starter
			if pokemon.DateCaught == "" {
				pokemon.DateCaught = time.Now().Format(entities.DateLayout)
			}
			if err := pokemonRepo.Create(&pokemon); err != nil {
				return errMsg{fmt.Errorf("failed to seed %s: %w", starter.Name, err)}
			}
			seeded++
		}

		return seedDoneMsg{starters: seeded}
	}
}

// hashable is a quick local sanity check so a typo'd password does not
// burn a full reset round-trip.
func hashable(password string) error {
	_, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return err
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if !m.entering() {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += msg.String()

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			switch m.step {
			case stepConfirmReset:
				m.step = stepEnteringName

			case stepEnteringName:
				if m.currentInput != "" {
					m.name = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringUsername
				}

			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					if err := hashable(m.password); err != nil {
						m.message = errorStyle.Render("✗ " + err.Error())
						m.step = stepFailed
						return m, nil
					}
					m.step = stepSeeding
					m.message = "Resetting database and seeding..."
					return m, seedDatabase(m.name, m.username, m.email, m.password)
				}

			case stepComplete, stepFailed:
				m.quitting = true
				return m, tea.Quit
			}

		default:
			if m.entering() {
				m.currentInput += msg.String()
			}
		}

	case seedDoneMsg:
		m.seededStarter = msg.starters
		m.step = stepComplete
		m.message = successStyle.Render(
			fmt.Sprintf("✓ Database ready: admin %q created, %d starter pokemons seeded", m.username, msg.starters))

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepFailed
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Pokedex Database Setup\n\n"))

	switch m.step {
	case stepConfirmReset:
		s.WriteString(errorStyle.Render("This DROPS the trainers and pokemons tables.\n"))
		s.WriteString("\nPress Enter to continue, q to quit\n")

	case stepEnteringName:
		s.WriteString(promptStyle.Render("Admin trainer name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Admin username (letters and numbers, max 15):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Admin email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Admin password (min 10 characters):\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSeeding:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")

	case stepFailed:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
