package crunchbang

// PortalDir is the travel direction of a portal.
type PortalDir int

const (
	PortalDown PortalDir = iota
	PortalUp
)

func (d PortalDir) String() string {
	if d == PortalUp {
		return "up"
	}
	return "down"
}

// Portal is an actor linking two levels. Portals come in pairs.
type Portal struct {
	Entity
	Dir     PortalDir // travel direction
	Message string    // travel message
	DestID  ID        // ID of the linked portal (0 if none)

	dest *Portal
}

// NewPortal returns an unlinked portal.
func (g *Game) NewPortal(dir PortalDir, name, message string) *Portal {
	r := '>'
	if dir == PortalUp {
		r = '<'
	}
	return &Portal{
		Entity:  newEntity(g.newID(), KindPortal, name, r, ColorMagenta),
		Dir:     dir,
		Message: message,
	}
}

// ConnectTo links the portal with another one, in both directions. Previous
// links of either portal are broken.
func (p *Portal) ConnectTo(o *Portal) {
	if p.dest != nil && p.dest != o {
		p.dest.unlink()
	}
	if o.dest != nil && o.dest != p {
		o.dest.unlink()
	}
	p.dest, p.DestID = o, o.ID
	o.dest, o.DestID = p, p.ID
}

func (p *Portal) unlink() {
	p.dest, p.DestID = nil, 0
}

// Destination returns the linked portal, or nil.
func (p *Portal) Destination() *Portal {
	return p.dest
}
