package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/HotelDesk/internal/domain"
)

// Ledger is the surface the console needs from the reservation ledger.
type Ledger interface {
	Availability(cat domain.Category) int
	Price(cat domain.Category) float64
	Book(ctx context.Context, customerName string, cat domain.Category, nights int) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ListAll() []domain.Booking
	FindByCustomer(name string) []domain.Booking
}

// Shell runs the numbered menu on the given reader/writer pair. All
// interaction is synchronous; the only pause is the simulated payment
// processing delay.
type Shell struct {
	ledger   Ledger
	in       *bufio.Scanner
	out      io.Writer
	payDelay time.Duration
}

func New(ledger Ledger, in io.Reader, out io.Writer, payDelay time.Duration) *Shell {
	return &Shell{
		ledger:   ledger,
		in:       bufio.NewScanner(in),
		out:      out,
		payDelay: payDelay,
	}
}

// Run drives the menu until the user exits, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, styleTitle.Render("==== HotelDesk Reservations ===="))

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printMenu()
		choice, ok := s.readLine("Enter choice: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.printAvailability()
		case "2":
			s.handleBook(ctx)
		case "3":
			s.handleCancel(ctx)
		case "4":
			s.handleListAll()
		case "5":
			s.handleSearch()
		case "6":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, styleError.Render("Invalid choice. Try again."))
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, styleMuted.Render("Menu:"))
	fmt.Fprintln(s.out, "1. View room availability")
	fmt.Fprintln(s.out, "2. Book a room")
	fmt.Fprintln(s.out, "3. Cancel a booking")
	fmt.Fprintln(s.out, "4. View all bookings")
	fmt.Fprintln(s.out, "5. Search bookings by customer name")
	fmt.Fprintln(s.out, "6. Exit")
}

func (s *Shell) printAvailability() {
	fmt.Fprintln(s.out, styleTitle.Render("Current availability:"))
	for _, cat := range domain.Categories() {
		fmt.Fprintf(s.out, "%-8s : %d available (price/night: %.2f)\n",
			cat, s.ledger.Availability(cat), s.ledger.Price(cat))
	}
}

func (s *Shell) handleBook(ctx context.Context) {
	fmt.Fprintln(s.out, styleTitle.Render("---- Book a Room ----"))

	name, ok := s.readLine("Enter your name: ")
	if !ok {
		return
	}
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(s.out, styleError.Render("Name cannot be empty."))
		return
	}

	fmt.Fprintln(s.out, "Choose category: 1. Standard  2. Deluxe  3. Suite")
	cat, ok := s.readCategory()
	if !ok {
		return
	}

	avail := s.ledger.Availability(cat)
	if avail <= 0 {
		fmt.Fprintln(s.out, styleError.Render("Sorry, no rooms available in the selected category."))
		return
	}
	fmt.Fprintf(s.out, "Rooms available: %d. Price per night: %.2f\n", avail, s.ledger.Price(cat))

	nights, ok := s.readInt("Enter number of nights: ")
	if !ok {
		return
	}
	if nights <= 0 {
		fmt.Fprintln(s.out, styleError.Render("Invalid nights."))
		return
	}

	fmt.Fprintf(s.out, "Total amount to pay (simulated): %.2f\n", s.ledger.Price(cat)*float64(nights))

	answer, ok := s.readLine("Proceed to payment? (yes/no): ")
	if !ok {
		return
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "yes" && answer != "y" {
		fmt.Fprintln(s.out, "Booking cancelled by user (payment not completed).")
		return
	}

	fmt.Fprintln(s.out, "Processing payment...")
	time.Sleep(s.payDelay)
	fmt.Fprintln(s.out, styleSuccess.Render("Payment successful!"))

	booking, err := s.ledger.Book(ctx, name, cat, nights)
	if err != nil {
		fmt.Fprintln(s.out, styleError.Render("Booking failed: "+errText(err)))
		return
	}

	fmt.Fprintln(s.out, styleSuccess.Render("Booking confirmed!"))
	fmt.Fprintln(s.out, formatBooking(*booking))
	fmt.Fprintln(s.out, "Save this booking ID for cancellation: "+styleTitle.Render(booking.ID))
}

func (s *Shell) handleCancel(ctx context.Context) {
	fmt.Fprintln(s.out, styleTitle.Render("---- Cancel Booking ----"))

	id, ok := s.readLine("Enter booking ID to cancel: ")
	if !ok {
		return
	}
	id = strings.TrimSpace(id)
	if id == "" {
		fmt.Fprintln(s.out, styleError.Render("Booking ID cannot be empty."))
		return
	}

	if err := s.ledger.Cancel(ctx, id); err != nil {
		fmt.Fprintln(s.out, styleError.Render("Booking ID not found. Please check and try again."))
		return
	}
	fmt.Fprintln(s.out, styleSuccess.Render("Booking cancelled successfully."))
}

func (s *Shell) handleListAll() {
	fmt.Fprintln(s.out, styleTitle.Render("---- All Bookings ----"))

	bookings := s.ledger.ListAll()
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, styleMuted.Render("No bookings found."))
		return
	}
	for _, b := range bookings {
		fmt.Fprintln(s.out, formatBooking(b))
	}
}

func (s *Shell) handleSearch() {
	name, ok := s.readLine("Enter customer name to search: ")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(s.out, styleError.Render("Name cannot be empty."))
		return
	}

	found := s.ledger.FindByCustomer(name)
	if len(found) == 0 {
		fmt.Fprintf(s.out, "No bookings found for %q.\n", name)
		return
	}
	fmt.Fprintln(s.out, "Found bookings:")
	for _, b := range found {
		fmt.Fprintln(s.out, formatBooking(b))
	}
}

func (s *Shell) readCategory() (domain.Category, bool) {
	n, ok := s.readInt("Category (1-3): ")
	if !ok {
		return "", false
	}

	cats := domain.Categories()
	if n < 1 || n > len(cats) {
		fmt.Fprintln(s.out, styleError.Render("Invalid category."))
		return "", false
	}
	return cats[n-1], true
}

func (s *Shell) readInt(prompt string) (int, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, styleError.Render("Please enter a valid integer."))
		return 0, false
	}
	return n, true
}

// readLine prompts and reads one line. ok is false once input ends.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func formatBooking(b domain.Booking) string {
	return fmt.Sprintf("BookingID: %s | Name: %s | Category: %s | Nights: %d | Amount: %.2f",
		b.ID, b.CustomerName, b.Category, b.Nights, b.Total)
}

func errText(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoRoomsAvailable):
		return "no rooms available in the selected category"
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	default:
		return "please try again"
	}
}
