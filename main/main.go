package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"interp1d/interpolate"
	"interp1d/io"
)

func main() {
	var (
		configPath, methodName, logPath string
		exampleConfig                   bool
	)

	flag.StringVar(&configPath, "Config", "",
		"Location of the interpolation config file.")
	flag.StringVar(&methodName, "Method", "",
		"Interpolation method. Overrides the config file.")
	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Print an example config file and exit.")

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleInterpolateFile)
		return
	}

	if configPath == "" {
		log.Fatal("An interpolation config file must be given with -Config.")
	}

	con, err := io.ReadConfig(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	if logPath == "" {
		logPath = con.LogFile
	}
	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		defer lf.Close()
	}

	if methodName == "" {
		methodName = con.Method
	}
	method, err := interpolate.ParseMethod(methodName)
	if err != nil {
		log.Fatal(err.Error())
	}

	points, err := io.ReadPoints(con.PointFile, con.XColumn, con.YColumn)
	if err != nil {
		log.Fatal(err.Error())
	}

	intr, err := interpolate.New(points)
	if err != nil {
		log.Fatal(err.Error())
	}

	if intr.PointSet().Len() == 0 {
		log.Fatalf("Point file %s contains no usable points.", con.PointFile)
	}

	low, high := intr.PointSet().Bounds()
	log.WithFields(log.Fields{
		"points": intr.PointSet().Len(),
		"method": method.String(),
		"range":  fmt.Sprintf("[%g, %g]", low, high),
	}).Info("Bound point set")

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("At least one query abscissa is required.")
	}

	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("Couldn't parse query %q: %s", arg, err.Error())
		}

		y, err := intr.Interpolate(method, x)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%g %g\n", x, y)
	}
}
