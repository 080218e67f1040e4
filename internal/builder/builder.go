// Package builder implements the build-a-PC flow: a set of component
// slots, compatibility checks between the chosen parts, and a bulk add of
// a finished build into the cart.
package builder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/storefront/internal/cart"
	"github.com/vasiliy-maslov/storefront/internal/catalog"
)

type Slot string

const (
	SlotProcessor   Slot = "processor"
	SlotMotherboard Slot = "motherboard"
	SlotMemory      Slot = "memory"
	SlotStorage     Slot = "storage"
	SlotGPU         Slot = "gpu"
	SlotPSU         Slot = "psu"
	SlotCase        Slot = "case"
	SlotCooler      Slot = "cooler"
)

type SlotSpec struct {
	Slot     Slot   `json:"slot"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Slots is the component structure of a build, in display order.
var Slots = []SlotSpec{
	{Slot: SlotProcessor, Label: "Processor", Required: true},
	{Slot: SlotMotherboard, Label: "Motherboard", Required: true},
	{Slot: SlotMemory, Label: "Memory (RAM)", Required: true},
	{Slot: SlotStorage, Label: "Storage", Required: true},
	{Slot: SlotGPU, Label: "Graphics Card", Required: false},
	{Slot: SlotPSU, Label: "Power Supply", Required: true},
	{Slot: SlotCase, Label: "Case", Required: true},
	{Slot: SlotCooler, Label: "CPU Cooler", Required: false},
}

// Build maps each filled slot to the chosen product.
type Build map[Slot]catalog.Product

type Result struct {
	Compatible bool     `json:"compatible"`
	Status     string   `json:"status"` // compatible | issues | incomplete
	Message    string   `json:"message"`
	Details    []string `json:"details"`
}

var ErrIncompatibleBuild = errors.New("build has compatibility issues or is incomplete")

// Spec tokens are extracted from free-text product names and
// descriptions, the same substring matching the storefront has always
// done. Micro-ATX and Mini-ITX must come before ATX in the alternation.
var (
	socketRe     = regexp.MustCompile(`\b(AM4|AM5|LGA1200|LGA1700)\b`)
	ramTypeRe    = regexp.MustCompile(`\b(DDR4|DDR5)\b`)
	formFactorRe = regexp.MustCompile(`\b(SODIMM|Micro-ATX|Mini-ITX|ATX)\b`)
)

func socketOf(p catalog.Product) string {
	return firstMatch(socketRe, p)
}

func ramTypeOf(p catalog.Product) string {
	return firstMatch(ramTypeRe, p)
}

func formFactorOf(p catalog.Product) string {
	return firstMatch(formFactorRe, p)
}

func firstMatch(re *regexp.Regexp, p catalog.Product) string {
	if m := re.FindString(p.Name + " " + p.Description); m != "" {
		return m
	}
	return ""
}

// Check validates a build. Parts with no extractable spec token are
// skipped rather than flagged, matching how unknown parts were always
// treated.
func Check(b Build) Result {
	var issues []string

	cpu, hasCPU := b[SlotProcessor]
	mobo, hasMobo := b[SlotMotherboard]
	mem, hasMem := b[SlotMemory]
	pcCase, hasCase := b[SlotCase]
	cooler, hasCooler := b[SlotCooler]

	if hasCPU && hasMobo {
		cpuSocket, moboSocket := socketOf(cpu), socketOf(mobo)
		if cpuSocket != "" && moboSocket != "" && cpuSocket != moboSocket {
			issues = append(issues, fmt.Sprintf("Socket Mismatch: CPU (%s) vs Motherboard (%s).", cpuSocket, moboSocket))
		}
	}
	if hasMem && hasMobo {
		memType, moboMemType := ramTypeOf(mem), ramTypeOf(mobo)
		if memType != "" && moboMemType != "" && memType != moboMemType {
			issues = append(issues, fmt.Sprintf("RAM Mismatch: Memory (%s) vs Motherboard (%s).", memType, moboMemType))
		}
	}
	if hasMem && formFactorOf(mem) == "SODIMM" {
		issues = append(issues, "Form Factor Warning: SODIMM RAM is for laptops, not desktops.")
	}
	if hasCase && hasMobo {
		moboFF, caseFF := formFactorOf(mobo), formFactorOf(pcCase)
		if moboFF != "" && caseFF != "" && moboFF != caseFF {
			issues = append(issues, fmt.Sprintf("Fit Warning: Motherboard (%s) may not fit in Case (%s).", moboFF, caseFF))
		}
	}
	if hasCooler && hasCPU {
		// The stock Wraith Stealth is not rated for AM5 parts.
		if socketOf(cpu) == "AM5" && strings.Contains(cooler.Name, "Wraith Stealth") {
			issues = append(issues, fmt.Sprintf("Cooling Warning: %s may be insufficient for %s.", cooler.Name, cpu.Name))
		}
	}

	if len(issues) > 0 {
		return Result{Compatible: false, Status: "issues", Message: "Compatibility Issues Found", Details: issues}
	}

	for _, spec := range Slots {
		if spec.Required {
			if _, ok := b[spec.Slot]; !ok {
				return Result{Compatible: false, Status: "incomplete", Message: "Please select all required parts", Details: []string{}}
			}
		}
	}

	return Result{Compatible: true, Status: "compatible", Message: "Your build is compatible!", Details: []string{}}
}

// AddToCart adds every part of a compatible build to the cart, in slot
// order, with the usual quantity-merge semantics.
func AddToCart(b Build, c *cart.Store) error {
	result := Check(b)
	if !result.Compatible {
		log.Warn().Str("status", result.Status).Msg("builder: refusing to add incompatible build to cart")
		return ErrIncompatibleBuild
	}

	for _, spec := range Slots {
		if p, ok := b[spec.Slot]; ok {
			c.Add(p)
		}
	}

	log.Info().Int("parts", len(b)).Msg("Build added to cart")
	return nil
}
