// Command txrun runs a single scripted transaction against a seeded
// in-memory world state and prints the resulting receipt. It exists to
// demonstrate the executive core end to end without a real bytecode
// interpreter, which is an external collaborator the core itself does not
// provide.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/executive"
	"github.com/sgkim126/txexec/state"
	"github.com/sgkim126/txexec/vm"
)

// demoSignerKey is the well-known Hardhat/Anvil default account's private
// key, used here purely to produce a real, recoverable signature for the
// demonstration transactions this command builds.
const demoSignerKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func demoSigner() (core.Address, core.Signature, core.Hash) {
	priv, err := crypto.HexToECDSA(demoSignerKey)
	if err != nil {
		panic(err)
	}
	hash := core.Hash{0x01}
	sig, err := crypto.Sign(hash[:], priv)
	if err != nil {
		panic(err)
	}

	var s core.Signature
	copy(s.R[:], sig[0:32])
	copy(s.S[:], sig[32:64])
	s.V = sig[64]

	return core.Address(crypto.PubkeyToAddress(priv.PublicKey)), s, hash
}

func main() {
	app := &cli.App{
		Name:  "txrun",
		Usage: "run one transaction against a freshly seeded world state",
		Commands: []*cli.Command{
			&createCmd,
			&callCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var createCmd = cli.Command{
	Name:  "create",
	Usage: "send a contract-creation transaction that writes storage slot 0 = 1",
	Flags: []cli.Flag{
		&cli.Uint64Flag{Name: "sender-balance", Value: 18},
		&cli.Uint64Flag{Name: "value", Value: 17},
		&cli.Uint64Flag{Name: "gas", Value: 100000},
		&cli.Uint64Flag{Name: "gas-limit", Value: 100000},
	},
	Action: func(c *cli.Context) error {
		sender, signature, hash := demoSigner()

		st := state.NewMemState()
		st.SeedAccount(sender, uint256.NewInt(c.Uint64("sender-balance")), 0)

		newAddress := core.Derive(sender, 0)

		scripted := vm.NewScriptedVM()
		scripted.Register(newAddress, func(ext *vm.Externalities) (vm.VmResult, error) {
			ext.State.SetStorage(ext.Params.Address, core.Key{}, core.Word{1})
			return vm.VmResult{GasLeft: ext.Params.Gas / 2}, nil
		})

		schedule := core.FrontierSchedule()
		engine := vm.NewBuiltinEngine(schedule, vm.PrecompilesIstanbul, &vm.ScriptedFactory{VM: scripted})
		env := &core.EnvInfo{Author: core.Address{0xaa}, GasLimit: core.Gas(c.Uint64("gas-limit"))}
		exec := executive.New(st, env, engine)

		tx := &core.Transaction{
			Nonce:       0,
			GasPrice:    new(uint256.Int),
			Gas:         core.Gas(c.Uint64("gas")),
			Action:      core.CreateAction(),
			Value:       uint256.NewInt(c.Uint64("value")),
			Data:        []byte{0x33, 0x31, 0x60, 0x00, 0x55},
			SigningHash: hash,
			Signature:   signature,
			Signed:      true,
		}

		receipt, err := exec.Transact(tx)
		if err != nil {
			return err
		}
		printReceipt(receipt)
		fmt.Printf("new contract address: %s\n", newAddress)
		fmt.Printf("new contract balance: %s\n", st.Balance(newAddress))
		return nil
	},
}

var callCmd = cli.Command{
	Name:  "call",
	Usage: "send a message call to an unseeded address with no code",
	Flags: []cli.Flag{
		&cli.Uint64Flag{Name: "sender-balance", Value: 1_000_000},
		&cli.Uint64Flag{Name: "value", Value: 0},
		&cli.Uint64Flag{Name: "gas", Value: 21000},
		&cli.Uint64Flag{Name: "gas-limit", Value: 1_000_000},
	},
	Action: func(c *cli.Context) error {
		sender, signature, hash := demoSigner()
		to := core.Address{0x42}

		st := state.NewMemState()
		st.SeedAccount(sender, uint256.NewInt(c.Uint64("sender-balance")), 0)

		schedule := core.FrontierSchedule()
		engine := vm.NewBuiltinEngine(schedule, vm.PrecompilesIstanbul, nil)
		env := &core.EnvInfo{Author: core.Address{0xaa}, GasLimit: core.Gas(c.Uint64("gas-limit"))}
		exec := executive.New(st, env, engine)

		tx := &core.Transaction{
			Nonce:       0,
			GasPrice:    new(uint256.Int),
			Gas:         core.Gas(c.Uint64("gas")),
			Action:      core.CallAction(to),
			Value:       uint256.NewInt(c.Uint64("value")),
			SigningHash: hash,
			Signature:   signature,
			Signed:      true,
		}

		receipt, err := exec.Transact(tx)
		if err != nil {
			return err
		}
		printReceipt(receipt)
		return nil
	},
}

func printReceipt(r *core.Receipt) {
	fmt.Printf("gas:                 %d\n", r.Gas)
	fmt.Printf("gas_used:            %d\n", r.GasUsed)
	fmt.Printf("refunded:            %d\n", r.Refunded)
	fmt.Printf("cumulative_gas_used: %d\n", r.CumulativeGasUsed)
	fmt.Printf("logs:                %d\n", len(r.Logs))
	fmt.Printf("contracts_created:   %v\n", r.ContractsCreated)
}
