package asciify

// LineSeparator terminates every row saved to a file.
const LineSeparator = "\r\n"
