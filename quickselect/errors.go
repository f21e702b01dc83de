package quickselect

const packageName = "quickselect: "

func textPanic(text string) {
	panic(packageName + text)
}
