package cmd

import (
	"fmt"

	"path-mapper/feature/gamepath"

	"github.com/spf13/cobra"
)

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Look up the item using a model set, variant and slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetUint16("set")
		weaponType, _ := cmd.Flags().GetUint16("type")
		variant, _ := cmd.Flags().GetUint16("variant")
		slotName, _ := cmd.Flags().GetString("slot")

		slot, ok := gamepath.EquipSlotFromName(slotName)
		if !ok {
			return fmt.Errorf("unknown slot %q", slotName)
		}

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		identifier, err := env.identifier(cmd.Context())
		if err != nil {
			return err
		}

		item, found := identifier.Item(set, weaponType, variant, slot)
		if !found {
			return fmt.Errorf("no item for set %d, type %d, variant %d, slot %s", set, weaponType, variant, slot)
		}
		fmt.Printf("%d\t%s\n", item.RowID, item.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
	itemCmd.Flags().Uint16("set", 0, "Model set id")
	itemCmd.Flags().Uint16("type", 0, "Weapon body id, weapons only")
	itemCmd.Flags().Uint16("variant", 0, "Model variant")
	itemCmd.Flags().String("slot", "", "Equip slot name (e.g. Body, MainHand)")
	_ = itemCmd.MarkFlagRequired("set")
	_ = itemCmd.MarkFlagRequired("slot")
}
