package display

import "sync"

type Region string

const (
	RegionTime       Region = "time"
	RegionConditions Region = "conditions"
	RegionIcon       Region = "icon"
)

// ChangeFunc is called after a region is written, outside the surface lock.
type ChangeFunc func(region Region, text string)

type Snapshot struct {
	ContainerID string `json:"container"`
	Time        string `json:"time"`
	Conditions  string `json:"conditions"`
	Icon        string `json:"icon"`
}

// Surface is the container a view renders into. The clock owns the time region
// and the weather pipeline owns the conditions and icon regions.
type Surface struct {
	mu       sync.RWMutex
	snapshot Snapshot
	onChange ChangeFunc
}

func NewSurface(containerID, initialConditions string, onChange ChangeFunc) *Surface {
	return &Surface{
		snapshot: Snapshot{
			ContainerID: containerID,
			Conditions:  initialConditions,
		},
		onChange: onChange,
	}
}

func (s *Surface) SetTime(text string) {
	s.write(RegionTime, text)
}

func (s *Surface) SetConditions(text string) {
	s.write(RegionConditions, text)
}

// SetIcon is reserved for iconography; views currently clear it only.
func (s *Surface) SetIcon(text string) {
	s.write(RegionIcon, text)
}

func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

func (s *Surface) write(region Region, text string) {
	s.mu.Lock()
	switch region {
	case RegionTime:
		s.snapshot.Time = text
	case RegionConditions:
		s.snapshot.Conditions = text
	case RegionIcon:
		s.snapshot.Icon = text
	}
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(region, text)
	}
}
