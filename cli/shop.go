package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/penumbra/progression"
)

func init() {
	cmd := &cobra.Command{
		Use:   "shop [upgrade]",
		Short: "Spend essence on permanent upgrades",
		Long: "With no argument, shop lists the upgrades and their prices.\n" +
			"With an upgrade name, it buys the next level of that upgrade.",
		Args: cobra.MaximumNArgs(1),
		Run:  runShop,
	}
	RootCmd.AddCommand(cmd)
}

var shopUpgrades = []progression.UpgradeKind{
	progression.UpgradeHP,
	progression.UpgradeEnergy,
	progression.UpgradeDamage,
	progression.UpgradeItemTier,
	progression.UpgradeLootLuck,
}

func runShop(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := openStore(settings)
	defer store.Close()
	ctx := cmd.Context()

	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		exitErr("load progression", err)
	}

	if len(args) == 0 {
		fmt.Printf("essence: %d\n\n", ledger.Essence)
		for _, kind := range shopUpgrades {
			level := ledger.Upgrades[kind]
			if level >= kind.MaxLevel() {
				fmt.Printf("  %-14s %d/%d  (maxed)\n", kind, level, kind.MaxLevel())
				continue
			}
			fmt.Printf("  %-14s %d/%d  next: %d essence\n", kind, level, kind.MaxLevel(), progression.CostAt(level))
		}
		return
	}

	kind, ok := upgradeByName(args[0])
	if !ok {
		exitErr("shop", fmt.Errorf("unknown upgrade %q", args[0]))
	}
	if err := ledger.Buy(kind); err != nil {
		exitErr("buy", err)
	}
	if err := store.SaveLedger(ctx, ledger); err != nil {
		exitErr("save progression", err)
	}
	fmt.Printf("%s is now level %d. %d essence left.\n", kind, ledger.Upgrades[kind], ledger.Essence)
}

func upgradeByName(name string) (progression.UpgradeKind, bool) {
	for _, kind := range shopUpgrades {
		if strings.EqualFold(kind.String(), name) {
			return kind, true
		}
	}
	return 0, false
}
