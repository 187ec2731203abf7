/*
Copyright © 2024 the WingWalker authors.
This file is part of WingWalker.

WingWalker is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

WingWalker is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with WingWalker.  If not, see <http://www.gnu.org/licenses/>.
*/

/*Package wing assembles airfoil cross-sections into a complete wing.*/
package wing

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wingwalker/airfoil"
	"github.com/spatialmodel/wingwalker/model"
	"github.com/spatialmodel/wingwalker/planform"
	"github.com/spatialmodel/wingwalker/section"
)

// Assembler builds wing models. The zero value is ready to use.
type Assembler struct {
	// Workers is the number of sections built concurrently. Zero or
	// less means runtime.GOMAXPROCS(0).
	Workers int

	// Log receives progress messages. If nil, the standard logrus
	// logger is used.
	Log logrus.FieldLogger
}

func (a Assembler) log() logrus.FieldLogger {
	if a.Log == nil {
		return logrus.StandardLogger()
	}
	return a.Log
}

// Assemble builds the wing described by req from specs. Sections are
// returned in step order regardless of how many workers build them.
func (a Assembler) Assemble(req model.WingRequest, specs *airfoil.Specs) (*Model, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if specs == nil {
		return nil, &model.InvalidRequestError{Field: "spec_file", Reason: "no airfoil specs"}
	}
	if specs.Len() < 3 {
		return nil, &model.InvalidRequestError{Field: "spec_file",
			Reason: fmt.Sprintf("airfoil %q has %d points, need at least 3 to form a polygon",
				specs.Designation(), specs.Len())}
	}
	f, err := planform.New(req)
	if err != nil {
		return nil, err
	}
	log := a.log().WithFields(logrus.Fields{
		"wing":     req.Identifier(),
		"airfoil":  specs.Designation(),
		"sections": req.Iterations,
	})
	log.Debug("assembling wing")

	chord, twist, z := f.ChordFunc(), f.TwistFunc(), f.ZFunc()
	mirror := req.Mirrored()
	sections := make([]section.Section, req.Iterations)

	nprocs := a.Workers
	if nprocs <= 0 {
		nprocs = runtime.GOMAXPROCS(0)
	}
	if nprocs > req.Iterations {
		nprocs = req.Iterations
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for t := p; t < req.Iterations; t += nprocs {
				sections[t] = section.Build(chord(t), twist(t), z(t), mirror, specs)
			}
		}(p)
	}
	wg.Wait()

	m := &Model{
		request:  req,
		specs:    specs,
		sections: sections,
		area:     f.AreaFunc()(),
	}
	log.WithFields(logrus.Fields{
		"area":         m.area,
		"mac":          m.MAC(),
		"aspect_ratio": m.AspectRatio(),
	}).Info("assembled wing")
	return m, nil
}

// Assemble builds the wing described by req from specs with a default
// Assembler.
func Assemble(req model.WingRequest, specs *airfoil.Specs) (*Model, error) {
	return Assembler{}.Assemble(req, specs)
}

// Generate loads the airfoil named by req.SpecFile and assembles the wing.
func (a Assembler) Generate(req model.WingRequest) (*Model, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a.log().WithField("spec_file", req.SpecFile).Debug("loading airfoil")
	specs, err := airfoil.Load(req.SpecFile, req.SpecFormat)
	if err != nil {
		return nil, fmt.Errorf("wing: %w", err)
	}
	return a.Assemble(req, specs)
}

// Generate loads the airfoil named by req.SpecFile and assembles the wing
// with a default Assembler.
func Generate(req model.WingRequest) (*Model, error) {
	return Assembler{}.Generate(req)
}
