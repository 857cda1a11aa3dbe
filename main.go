package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"gsc-contract/abi"
	"gsc-contract/config"
	"gsc-contract/contract"
	"gsc-contract/util/log"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

var (
	displayConfig bool
	abiFile       string
	txRawHex      string
	ownerAddr     string
)

func init() {
	flag.BoolVar(&displayConfig, "display", false, "print loaded config")
	flag.StringVar(&abiFile, "abi", "", "normalize the solc abi json in this file, - for stdin")
	flag.StringVar(&txRawHex, "tx", "", "hex encoded raw data of a CreateSmartContract transaction")
	flag.StringVar(&ownerAddr, "owner", "", "creator address of the transaction, hex or base58check")
}

func main() {
	flag.Parse()
	config.Load(displayConfig)
	initLogger()

	switch {
	case abiFile != "":
		printABI(abiFile)
	case txRawHex != "":
		printCreation(txRawHex, ownerAddr)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func initLogger() {
	maxSize, maxBackups, maxAge := config.GetLogRotation()
	log.SetPath(config.GetLogPath())
	log.SetRotation(log.Rotation{
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	})
	log.SetPrefix(config.GetLabel())
	log.Init(config.DebugMode())
}

func printABI(file string) {
	var raw []byte
	var err error

	if file == "-" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(file)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writeABI(os.Stdout, raw); err != nil {
		log.Fatalf("ABI could not be derived from %s: %v", file, err)
	}
}

func printCreation(rawHex, owner string) {
	if err := writeCreation(os.Stdout, rawHex, owner); err != nil {
		log.Fatal(err)
	}
}

// writeABI writes the normalized abi as JSON to w, nothing else goes to w.
func writeABI(w io.Writer, raw []byte) error {
	contractABI, err := abi.Normalize(string(raw))
	if err != nil {
		return err
	}

	log.Debugf("Normalized %d abi entries", contractABI.Len())

	out, err := json.MarshalIndent(contractABI, "", "    ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeCreation writes the creation summary as JSON to w.
func writeCreation(w io.Writer, rawHex, owner string) error {
	rawData, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(rawHex), "0x"))
	if err != nil {
		return fmt.Errorf("invalid transaction raw data: %v", err)
	}

	ownerAddress, err := contract.ParseAddress(owner)
	if err != nil {
		return err
	}

	creation, err := contract.NewCreation(rawData, ownerAddress)
	if err != nil {
		return err
	}

	log.Debugf("Contract address of tx %s: %s", creation.TxID, creation.ContractAddress.Base58())

	out, err := creation.JSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
