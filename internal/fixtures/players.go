// Package fixtures provides a small synthetic player dataset for demo
// runs (--use-fixtures) and tests that need a populated store.
package fixtures

import (
	"context"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// Load inserts the fixture dataset into a store.
func Load(ctx context.Context, store storage.PlayerStore) error {
	return store.InsertBulk(ctx, Records())
}

// Records returns the fixture dataset: two seasons of synthetic players
// covering every position group, with enough peers per group to make
// percentiles meaningful. Values are invented but shaped like the real
// data (volume counts scale with n90s, percentages sit in sane ranges).
func Records() []*domain.PlayerRecord {
	var records []*domain.PlayerRecord

	// Forwards
	records = append(records,
		forward("Dario Venn", "Oldcastle", "2024-2025", 22.4, 28.0, 18.2, 16, 14.1, 0.55, 180, 44.0, 47.5, 120),
		forward("Dario Venn", "Oldcastle", "2025-2026", 23.4, 10.0, 7.9, 7, 5.8, 0.61, 66, 48.0, 50.1, 45),
		forward("Mattia Rou", "Eastbrook", "2024-2025", 27.1, 30.2, 9.4, 8, 7.7, 0.32, 95, 38.5, 35.0, 70),
		forward("Simo Hale", "Riverholm", "2024-2025", 31.8, 25.5, 14.8, 13, 12.0, 0.41, 60, 40.2, 42.3, 88),
		forward("Teo Brandt", "Oldcastle", "2025-2026", 19.2, 8.5, 3.1, 3, 2.6, 0.28, 40, 35.0, 30.8, 25),
	)

	// Midfielders (raw tag MF, plus the mixed tags for AM/DM parsing)
	records = append(records,
		midfielder("Kai Marlow", "MF", "Riverholm", "2024-2025", 25.6, 32.0, 4.2, 48, 88.1, 210, 62.0, 45, 28, 20),
		midfielder("Kai Marlow", "MF", "Riverholm", "2025-2026", 26.6, 11.0, 1.8, 19, 89.4, 80, 65.5, 18, 8, 6),
		midfielder("Luca Ferro", "MF,FW", "Eastbrook", "2024-2025", 21.9, 26.4, 6.8, 55, 81.7, 160, 48.0, 20, 40, 31),
		midfielder("Owen Stiles", "MF,DF", "Northgate", "2024-2025", 29.0, 30.1, 1.2, 14, 91.2, 190, 70.4, 58, 15, 11),
		midfielder("Pavel Brik", "MF", "Southmoor", "2024-2025", 33.5, 27.7, 2.5, 30, 85.0, 150, 55.1, 33, 22, 17),
		midfielder("Jonas Vell", "MF", "Northgate", "2025-2026", 24.2, 9.3, 1.1, 12, 83.8, 52, 51.9, 13, 12, 9),
	)

	// Defenders
	records = append(records,
		defender("Abel Torres", "Southmoor", "2024-2025", 26.3, 33.0, 68.5, 55, 180, 6200, 48, 95, 130),
		defender("Rui Castel", "Oldcastle", "2024-2025", 30.7, 31.2, 60.1, 40, 160, 5400, 52, 88, 155),
		defender("Emil Noor", "Riverholm", "2025-2026", 20.8, 12.5, 55.0, 18, 60, 2100, 20, 35, 48),
	)

	// Goalkeepers
	records = append(records,
		keeper("Viktor Lange", "Northgate", "2024-2025", 28.9, 34.0, 4.2, 74.1, 9.5, 38.2, 40),
		keeper("Sam Priddy", "Eastbrook", "2024-2025", 35.2, 32.1, -2.8, 68.9, 6.1, 44.0, 22),
	)

	// A low-minutes forward that the n90s floor must exclude from peers.
	records = append(records,
		forward("Nilo Kasse", "Southmoor", "2024-2025", 18.5, 2.1, 1.9, 2, 1.5, 0.9, 9, 60.0, 66.7, 10),
	)

	return records
}

func forward(name, squad, season string, age, n90s, xg float64, npg int, xag, gca90 float64, prgc int, succPct, sotPct float64, touchesBox int) *domain.PlayerRecord {
	return &domain.PlayerRecord{
		Name: name, Pos: "FW", Squad: squad, Comp: "League One", Season: season,
		Age: f(age), N90s: f(n90s),
		XG: f(xg), NPG: f(float64(npg)), XAG: f(xag), GCA90: f(gca90),
		PrgC: f(float64(prgc)), SuccPct: f(succPct), SoTPct: f(sotPct), TouchesBox: f(float64(touchesBox)),
	}
}

func midfielder(name, pos, squad, season string, age, n90s, xag float64, kp int, cmpPct float64, prgp int, tklPct float64, interceptions, miscontrols, dispossessed int) *domain.PlayerRecord {
	return &domain.PlayerRecord{
		Name: name, Pos: pos, Squad: squad, Comp: "League One", Season: season,
		Age: f(age), N90s: f(n90s),
		XAG: f(xag), KP: f(float64(kp)), CmpPct: f(cmpPct), PrgP: f(float64(prgp)),
		TklPct: f(tklPct), Interceptions: f(float64(interceptions)),
		Miscontrols: f(float64(miscontrols)), Dispossessed: f(float64(dispossessed)),
		GCA90: f(0.2), PrgC: f(30), Blocks: f(20), Recoveries: f(120),
	}
}

func defender(name, squad, season string, age, n90s, aerialPct float64, defAct3rd, recoveries, prgDist, blocks, tklInt, clearances int) *domain.PlayerRecord {
	return &domain.PlayerRecord{
		Name: name, Pos: "DF", Squad: squad, Comp: "League One", Season: season,
		Age: f(age), N90s: f(n90s),
		AerialWonPct: f(aerialPct), DefActAtt3rd: f(float64(defAct3rd)),
		Recoveries: f(float64(recoveries)), PrgPassDist: f(float64(prgDist)),
		Blocks: f(float64(blocks)), TklInt: f(float64(tklInt)), Clearances: f(float64(clearances)),
	}
}

func keeper(name, squad, season string, age, n90s, psxg, savePct, stopPct, launchPct float64, opa int) *domain.PlayerRecord {
	return &domain.PlayerRecord{
		Name: name, Pos: "GK", Squad: squad, Comp: "League One", Season: season,
		Age: f(age), N90s: f(n90s),
		PSxGPlusMinus: f(psxg), SavePct: f(savePct), CrossStopPct: f(stopPct),
		LaunchPct: f(launchPct), OPASweeper: f(float64(opa)),
	}
}

func f(v float64) *float64 { return &v }
