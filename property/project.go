package property

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/poreflow/health"
	"github.com/katalvlaran/poreflow/network"
)

// Geometry-health issue names reported by Project.GeometryHealth.
const (
	IssueUndefinedPores     = "undefined_pores"
	IssueUndefinedThroats   = "undefined_throats"
	IssueOverlappingPores   = "overlapping_pores"
	IssueOverlappingThroats = "overlapping_throats"
)

// located is a store mapped onto a subset of the network.
type located struct {
	store   *Store
	pores   []int
	throats []int
}

// physics pairs a physics store with the geometry it sits on.
type physics struct {
	store    *Store
	geometry string
}

// Project ties a phase to the geometries and physics covering a network.
// It implements health.Upstream.
type Project struct {
	net        *network.Network
	phase      *Store
	geometries []located
	physics    []physics
	names      map[string]bool
}

var _ health.Upstream = (*Project)(nil)

// NewProject validates that phase spans the whole network.
func NewProject(net *network.Network, phase *Store) (*Project, error) {
	if phase.Np() != net.Np() || phase.Nt() != net.Nt() {
		return nil, propertyErrorf("NewProject", fmt.Errorf("%w: phase %q is %dx%d, network is %dx%d",
			ErrSizeMismatch, phase.Name(), phase.Np(), phase.Nt(), net.Np(), net.Nt()))
	}

	return &Project{
		net:   net,
		phase: phase,
		names: map[string]bool{phase.Name(): true},
	}, nil
}

// Network returns the project network.
func (p *Project) Network() *network.Network { return p.net }

// Phase returns the project phase.
func (p *Project) Phase() *Store { return p.phase }

// AddGeometry places g on the given pores and throats. The store's Np and
// Nt must equal the location counts.
func (p *Project) AddGeometry(g *Store, pores, throats []int) error {
	tag := fmt.Sprintf("AddGeometry(%q)", g.Name())
	if p.names[g.Name()] {
		return propertyErrorf(tag, ErrDuplicateObject)
	}
	if len(pores) != g.Np() || len(throats) != g.Nt() {
		return propertyErrorf(tag, fmt.Errorf("%w: %d pores, %d throats for a %dx%d store",
			ErrSizeMismatch, len(pores), len(throats), g.Np(), g.Nt()))
	}
	if err := p.net.ValidatePores(pores); err != nil {
		return propertyErrorf(tag, fmt.Errorf("%w: %w", ErrOutOfRange, err))
	}
	if err := p.net.ValidateThroats(throats); err != nil {
		return propertyErrorf(tag, fmt.Errorf("%w: %w", ErrOutOfRange, err))
	}
	p.geometries = append(p.geometries, located{
		store:   g,
		pores:   append([]int(nil), pores...),
		throats: append([]int(nil), throats...),
	})
	p.names[g.Name()] = true

	return nil
}

// AddPhysics places phys on the locations of the named geometry.
func (p *Project) AddPhysics(phys *Store, geometry string) error {
	tag := fmt.Sprintf("AddPhysics(%q)", phys.Name())
	if p.names[phys.Name()] {
		return propertyErrorf(tag, ErrDuplicateObject)
	}
	g, ok := p.geometry(geometry)
	if !ok {
		return propertyErrorf(tag, fmt.Errorf("%w: geometry %q", ErrUnknownObject, geometry))
	}
	if phys.Np() != g.store.Np() || phys.Nt() != g.store.Nt() {
		return propertyErrorf(tag, fmt.Errorf("%w: physics is %dx%d, geometry %q is %dx%d",
			ErrSizeMismatch, phys.Np(), phys.Nt(), geometry, g.store.Np(), g.store.Nt()))
	}
	p.physics = append(p.physics, physics{store: phys, geometry: geometry})
	p.names[phys.Name()] = true

	return nil
}

func (p *Project) geometry(name string) (located, bool) {
	for _, g := range p.geometries {
		if g.store.Name() == name {
			return g, true
		}
	}

	return located{}, false
}

// GeometryHealth counts how many geometries cover each pore and throat.
// A project without geometries has nothing to check and returns an empty
// map. Otherwise every issue key is present; an empty slice means the
// check passed.
func (p *Project) GeometryHealth() map[string][]int {
	out := make(map[string][]int)
	if len(p.geometries) == 0 {
		return out
	}
	poreHits := make([]int, p.net.Np())
	throatHits := make([]int, p.net.Nt())
	for _, g := range p.geometries {
		for _, i := range g.pores {
			poreHits[i]++
		}
		for _, i := range g.throats {
			throatHits[i]++
		}
	}
	out[IssueUndefinedPores], out[IssueOverlappingPores] = coverage(poreHits)
	out[IssueUndefinedThroats], out[IssueOverlappingThroats] = coverage(throatHits)

	return out
}

func coverage(hits []int) (undefined, overlapping []int) {
	undefined, overlapping = []int{}, []int{}
	for i, h := range hits {
		switch {
		case h == 0:
			undefined = append(undefined, i)
		case h > 1:
			overlapping = append(overlapping, i)
		}
	}

	return undefined, overlapping
}

// Triplets groups the phase with each geometry and the physics on it.
// Geometries without physics form pairs; a project without geometries
// yields the phase alone.
func (p *Project) Triplets() [][]health.Object {
	if len(p.geometries) == 0 {
		return [][]health.Object{{p.phase}}
	}
	var out [][]health.Object
	for _, g := range p.geometries {
		var matched bool
		for _, ph := range p.physics {
			if ph.geometry == g.store.Name() {
				out = append(out, []health.Object{p.phase, g.store, ph.store})
				matched = true
			}
		}
		if !matched {
			out = append(out, []health.Object{p.phase, g.store})
		}
	}

	return out
}

// Objects returns every object name in the project, ascending.
func (p *Project) Objects() []string {
	out := make([]string, 0, len(p.names))
	for n := range p.names {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
