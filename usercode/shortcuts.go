package usercode

func ShortcutPlusPlus(param string) {
	logInfo("Executing ++ with param: '%s'", param)
}

func ShortcutPlusL(param string) {
	logInfo("Executing +l with param: '%s'", param)
}

func ShortcutPlusM(param string) {
	logInfo("Executing +m with param: '%s'", param)
}

func ShortcutPlusQuestionMark(param string) {
	logInfo("Executing +? with param: '%s'", param)
}

func ShortcutPlusTilde(param string) {
	logInfo("Executing +~ with param: '%s'", param)
}

func ShortcutDotDot(param string) {
	logInfo("Executing .. with param: '%s'", param)
}

func ShortcutDotZ(param string) {
	logInfo("Executing .z with param: '%s'", param)
}

func ShortcutDotK(param string) {
	logInfo("Executing .k with param: '%s'", param)
}

func ShortcutMinusDot(param string) {
	logInfo("Executing -. with param: '%s'", param)
}

func ShortcutMinusT(param string) {
	logInfo("Executing -t with param: '%s'", param)
}

func ShortcutMinusU(param string) {
	logInfo("Executing -u with param: '%s'", param)
}

func ShortcutMinusW(param string) {
	logInfo("Executing -w with param: '%s'", param)
}
