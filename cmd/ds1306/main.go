// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ds1306 reads and sets a DS1306 real-time clock.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/rtcdevices/ds1306"
	"github.com/GermanBionicSystems/rtcdevices/regdump"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	timeColor    = color.NRGBA{R: 0x20, G: 0xd0, B: 0x20, A: 255}
	alarm0Color  = color.NRGBA{R: 0xe0, G: 0xc0, B: 0x20, A: 255}
	alarm1Color  = color.NRGBA{R: 0xe0, G: 0x80, B: 0x20, A: 255}
	controlColor = color.NRGBA{R: 0x40, G: 0x80, B: 0xf0, A: 255}
	statusColor  = color.NRGBA{R: 0xf0, G: 0x30, B: 0x30, A: 255}
	chargerColor = color.NRGBA{R: 0xc0, G: 0x40, B: 0xf0, A: 255}
)

func rowColor(r ds1306.Register) color.NRGBA {
	switch {
	case r < ds1306.RegAlarm0:
		return timeColor
	case r < ds1306.RegAlarm1:
		return alarm0Color
	case r < ds1306.RegControl:
		return alarm1Color
	case r == ds1306.RegControl:
		return controlColor
	case r == ds1306.RegStatus:
		return statusColor
	default:
		return chargerColor
	}
}

func dump(dev *ds1306.Dev) error {
	regs, err := dev.Registers()
	if err != nil {
		return err
	}
	return render(regdump.New(nil), regs)
}

// render writes regs and resets the terminal attributes.
func render(d *regdump.Dumper, regs [ds1306.RegisterCount]byte) error {
	rows := make([]regdump.Row, len(regs))
	for i, v := range regs {
		r := ds1306.Register(i)
		rows[i] = regdump.Row{Name: r.String(), Value: v, On: rowColor(r)}
	}
	if err := d.Write(rows); err != nil {
		_ = d.Halt()
		return err
	}
	return d.Halt()
}

func slotArg(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil || (slot != 0 && slot != 1) {
		return 0, fmt.Errorf("invalid alarm slot %q, want 0 or 1", arg)
	}
	return slot, nil
}

func onOff(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", arg)
}

// parseField parses one clock field; "*" means any value and returns
// match false.
func parseField(s string) (int, bool, error) {
	if s == "*" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid clock field %q", s)
	}
	return n, true, nil
}

// parseTime parses HH:MM:SS with an optional trailing am or pm, which
// selects 12-hour mode.
func parseTime(args []string) (ds1306.TimeOfDay, [3]bool, error) {
	var t ds1306.TimeOfDay
	var match [3]bool
	if len(args) == 0 || len(args) > 2 {
		return t, match, errors.New("expected HH:MM:SS [am|pm]")
	}
	parts := strings.Split(args[0], ":")
	if len(parts) != 3 {
		return t, match, fmt.Errorf("invalid time %q, want HH:MM:SS", args[0])
	}
	var v [3]int
	for i, p := range parts {
		n, ok, err := parseField(p)
		if err != nil {
			return t, match, err
		}
		v[i], match[i] = n, ok
	}
	t.Hour, t.Minute, t.Second = v[0], v[1], v[2]
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "am":
			t.Hour12 = true
		case "pm":
			t.Hour12, t.PM = true, true
		default:
			return t, match, fmt.Errorf("want am or pm, got %q", args[1])
		}
	}
	return t, match, nil
}

func parseCharger(args []string) (ds1306.ChargerConfig, error) {
	var c ds1306.ChargerConfig
	if len(args) != 2 {
		return c, errors.New("expected <diodes 0|1|2> <resistor none|2k|4k|8k>")
	}
	switch args[0] {
	case "0":
		c.Diode = ds1306.DiodeNone
	case "1":
		c.Diode = ds1306.DiodeSingle
	case "2":
		c.Diode = ds1306.DiodeDual
	default:
		return c, fmt.Errorf("invalid diode count %q", args[0])
	}
	switch strings.ToLower(args[1]) {
	case "none":
		c.Resistor = ds1306.ResistorNone
	case "2k":
		c.Resistor = ds1306.Resistor2K
	case "4k":
		c.Resistor = ds1306.Resistor4K
	case "8k":
		c.Resistor = ds1306.Resistor8K
	default:
		return c, fmt.Errorf("invalid resistor %q", args[1])
	}
	return c, c.Validate()
}

func alarmCmd(dev *ds1306.Dev, args []string) error {
	if len(args) != 1 {
		return errors.New("expected an alarm slot, 0 or 1")
	}
	slot, err := slotArg(args[0])
	if err != nil {
		return err
	}
	a, err := dev.Alarm(slot)
	if err != nil {
		return err
	}
	fired, err := dev.AlarmStatus(slot)
	if err != nil {
		return err
	}
	fmt.Printf("alarm %d: %s weekday %d match h=%t m=%t s=%t wd=%t fired=%t\n",
		slot, a.Time, a.Weekday, a.MatchHour, a.MatchMinute, a.MatchSecond, a.MatchWeekday, fired)
	return nil
}

// setAlarmCmd handles: <slot> HH:MM:SS [am|pm] [weekday|*]. Fields given as
// "*" match any value.
func setAlarmCmd(dev *ds1306.Dev, args []string) error {
	if len(args) < 2 {
		return errors.New("expected <slot> HH:MM:SS [am|pm] [weekday|*]")
	}
	slot, err := slotArg(args[0])
	if err != nil {
		return err
	}
	rest := args[1:]
	wd := "*"
	if n := len(rest); n > 1 && !strings.EqualFold(rest[n-1], "am") && !strings.EqualFold(rest[n-1], "pm") {
		wd, rest = rest[n-1], rest[:n-1]
	}
	t, match, err := parseTime(rest)
	if err != nil {
		return err
	}
	weekday, matchWD, err := parseField(wd)
	if err != nil {
		return err
	}
	return dev.SetAlarm(slot, ds1306.AlarmSpec{
		Time:         t,
		Weekday:      weekday,
		MatchHour:    match[0],
		MatchMinute:  match[1],
		MatchSecond:  match[2],
		MatchWeekday: matchWD,
	})
}

func chargerCmd(dev *ds1306.Dev, args []string) error {
	if len(args) == 0 {
		c, on, err := dev.Charger()
		if err != nil {
			return err
		}
		fmt.Printf("charger: %s enabled=%t\n", c, on)
		return nil
	}
	switch args[0] {
	case "set":
		c, err := parseCharger(args[1:])
		if err != nil {
			return err
		}
		return dev.SetChargerState(c)
	case "on":
		return dev.EnableCharger()
	case "off":
		return dev.DisableCharger()
	}
	return fmt.Errorf("unknown charger command %q", args[0])
}

func run(dev *ds1306.Dev, cmd string, args []string) error {
	switch cmd {
	case "now":
		t, err := dev.Now()
		if err != nil {
			return err
		}
		fmt.Println(t.Format(time.RFC3339))
	case "sync":
		return dev.SetNow(time.Now())
	case "time":
		t, err := dev.Time()
		if err != nil {
			return err
		}
		fmt.Println(t)
	case "settime":
		t, match, err := parseTime(args)
		if err != nil {
			return err
		}
		if !match[0] || !match[1] || !match[2] {
			return errors.New("settime does not take wildcards")
		}
		return dev.SetTime(t)
	case "date":
		d, err := dev.Date()
		if err != nil {
			return err
		}
		fmt.Println(d)
	case "setdate":
		if len(args) != 1 {
			return errors.New("expected YYYY-MM-DD")
		}
		t, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return err
		}
		return dev.SetDate(t.Year()-ds1306.Century, int(t.Month()), t.Day())
	case "alarm":
		return alarmCmd(dev, args)
	case "setalarm":
		return setAlarmCmd(dev, args)
	case "alarmint":
		if len(args) != 2 {
			return errors.New("expected <slot> on|off")
		}
		slot, err := slotArg(args[0])
		if err != nil {
			return err
		}
		on, err := onOff(args[1])
		if err != nil {
			return err
		}
		if on {
			return dev.EnableAlarmInt(slot)
		}
		return dev.DisableAlarmInt(slot)
	case "1hz":
		if len(args) != 1 {
			return errors.New("expected on|off")
		}
		on, err := onOff(args[0])
		if err != nil {
			return err
		}
		if on {
			return dev.Enable1HzPin()
		}
		return dev.Disable1HzPin()
	case "charger":
		return chargerCmd(dev, args)
	case "dump":
		return dump(dev)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func mainImpl() error {
	spiName := flag.String("spi", "", "SPI port to use")
	ceName := flag.String("ce", "", "GPIO driving the DS1306 CE pin")
	hz := physic.Frequency(0)
	flag.Var(&hz, "hz", "SPI clock (default 100kHz)")
	verbose := flag.Bool("v", false, "trace bus transactions")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), "usage: ds1306 -ce <pin> [flags] <command>\n\n"+
			"commands:\n"+
			"  now | sync | time | date | dump\n"+
			"  settime HH:MM:SS [am|pm]\n"+
			"  setdate YYYY-MM-DD\n"+
			"  alarm <slot>\n"+
			"  setalarm <slot> HH:MM:SS [am|pm] [weekday]   (* matches any value)\n"+
			"  alarmint <slot> on|off\n"+
			"  1hz on|off\n"+
			"  charger [set <diodes> <none|2k|4k|8k> | on | off]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("missing command")
	}
	if *ceName == "" {
		return errors.New("-ce is required")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiName)
	if err != nil {
		return fmt.Errorf("failed to open SPI: %w", err)
	}
	defer p.Close()
	ce := gpioreg.ByName(*ceName)
	if ce == nil {
		return fmt.Errorf("failed to find pin %q", *ceName)
	}

	opts := ds1306.DefaultOpts
	if hz != 0 {
		opts.Freq = hz
	}
	if *verbose {
		opts.Debug = log.Printf
	}
	dev, err := ds1306.New(p, ce, &opts)
	if err != nil {
		return err
	}
	return run(dev, flag.Arg(0), flag.Args()[1:])
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ds1306: %s.\n", err)
		os.Exit(1)
	}
}
