package service

// Physician is a single entry of the static physician roster
type Physician struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// physicians is the externally supplied roster, kept in its supplied order.
// The roster is used for display and soft validation only: an appointment is
// required to carry a physician name, but an unknown name is not rejected at
// write time.
var physicians = []Physician{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-remirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

type RosterService interface {
	List() []Physician
	Find(name string) (*Physician, bool)
}

type rosterService struct {
	physicians []Physician
}

func NewRosterService() RosterService {
	return &rosterService{physicians: physicians}
}

// List returns the roster in its original order
func (s *rosterService) List() []Physician {
	out := make([]Physician, len(s.physicians))
	copy(out, s.physicians)
	return out
}

// Find resolves a physician by exact name match
func (s *rosterService) Find(name string) (*Physician, bool) {
	for i := range s.physicians {
		if s.physicians[i].Name == name {
			return &s.physicians[i], true
		}
	}
	return nil, false
}
