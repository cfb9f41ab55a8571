// Package usercode holds the demo command set wired into the ushell
// front-ends, together with the dispatchers generated from
// commands.cfg and shortcuts.cfg.
package usercode

//go:generate go run github.com/phroun/ushell/cmd/ushellgen -pkg usercode -commands commands.cfg -out commands_gen.go -shortcuts shortcuts.cfg -shortcuts-out shortcuts_gen.go -hexstr-size 64 -errbuf-size 64

import (
	ushell "github.com/phroun/ushell"
)

// log is installed once at startup; handlers report through it.
var log *ushell.Logger

// SetLogger installs the logger the handlers write to. Call it once
// before the first dispatch.
func SetLogger(l *ushell.Logger) {
	log = l
}

func logInfo(format string, args ...interface{}) {
	if log != nil {
		log.Info(format, args...)
	}
}

func Init() {
	logInfo("init | no-args")
}

func Ianit() {
	logInfo("ianit | no-args")
}

func Iaanit() {
	logInfo("iaanit | no-args")
}

func Ibnit() {
	logInfo("ibnit | no-args")
}

func Ibbnit() {
	logInfo("ibbnit | no-args")
}

func Ibbbnit() {
	logInfo("ibbbnit | no-args")
}

func Read(descr int8, nbytes uint32) {
	logInfo("read | descriptor: %d, bytes:%d", descr, nbytes)
}

func Write(filename string, nbytes uint64, val uint8) {
	logInfo("write | filename: %s, bytes:%d, value:%X/%o/%b", filename, nbytes, val, val, val)
}

func Led(onoff bool) {
	if onoff {
		logInfo("led | ON")
	} else {
		logInfo("led | OFF")
	}
}

func Greeting(s1, s2 string) {
	logInfo("greeting | [%s] : [%s]", s1, s2)
}

func Send(port string, baud uint32, data []byte) {
	logInfo("send | port: %s baudrate: %d, data:%v", port, baud, data)
}

func AString(s string) {
	logInfo("astring | %s", s)
}

func BString(s string) {
	logInfo("bstring | %s", s)
}

func CString(s string) {
	logInfo("cstring | %s", s)
}
