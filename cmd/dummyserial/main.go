// Command line console for dummyserial. Loads a YAML response table, then
// reads lines from stdin, writes each to a dummy port and prints the
// response.
//
// Usage:
//
//	dummyserial -responses modem.yml
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/barnybug/dummyserial"
	log "github.com/sirupsen/logrus"
)

var (
	name      = flag.String("port", "/dev/ttyDUMMY", "port name")
	baud      = flag.Int("baud", dummyserial.DefaultBaudrate, "baud rate")
	responses = flag.String("responses", "", "YAML response table")
	crlf      = flag.Bool("crlf", true, "append CRLF to each request")
	verbose   = flag.Bool("v", false, "verbose debug logging")
)

func main() {
	flag.Parse()
	if *verbose {
		dummyserial.Log.SetLevel(log.DebugLevel)
	}

	config := &dummyserial.Config{Name: *name, Baud: *baud}
	if *responses != "" {
		table, err := dummyserial.LoadResponses(*responses)
		if err != nil {
			log.Fatalf("Reading %s: %s", *responses, err)
		}
		log.Infof("Loaded %d responses from %s", len(table), *responses)
		config.Lookup = table.Lookup
	}

	port, err := dummyserial.Open(config)
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()
	log.Infof("Opened %s", port)

	scanner := bufio.NewScanner(os.Stdin)
	buf := make([]byte, 4096)
	for scanner.Scan() {
		request := scanner.Text()
		if *crlf {
			request += "\r\n"
		}
		if _, err := port.Write([]byte(request)); err != nil {
			log.Fatal(err)
		}
		var response []byte
		for {
			n, err := port.Read(buf)
			if err != nil {
				log.Fatal(err)
			}
			response = append(response, buf[:n]...)
			if port.InWaiting() == 0 {
				break
			}
		}
		fmt.Printf("%q\n", response)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
