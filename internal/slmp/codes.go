package slmp

// End-code catalogue for the FX5 Ethernet interface, quoted from the vendor
// error-code manual. Codes 0x4000-0x4FFF are CPU-detected errors without
// individual catalogue entries and fall through to the generic message.

// unknownErrorMessage is returned for end codes absent from the catalogue.
const unknownErrorMessage = "unknown error"

var errorMessages = map[uint16]string{
	0x112E: "Connection not established during open processing.",
	0x1134: "A TCP ULP timeout error occurred during TCP / IP communication (ACK was not returned from the partner device).",
	0x1920: "The value of the IP address setting (SD8492 to SD8497) is out of the setting range.",
	0x1921: "The write request and the clear request (SM8492, SM8495) were turned off and on at the same time.",
	0x2160: "A duplicate IP address has been detected.",
	0x2250: "The protocol setting data stored in the CPU unit is not a usable unit.",
	0xC012: "Open processing with the partner device failed. (For TCP / IP)",
	0xC013: "The open processing with the partner device failed. (For UDP / IP)",
	0xC015: "There is an error in the setting value of the IP address of the external device during open processing, or the setting of the IP address of the external device in the dedicated command.",
	0xC018: "The setting of the IP address of the partner device is incorrect.",
	0xC020: "The transmission / reception data length exceeds the allowable range.",
	0xC024: "Communication using communication protocol was performed in connection other than communication protocol.",
	0xC025: "The content of the control data is incorrect or the open setting parameter has not been set, but the open setting parameter was specified.",
	0xC027: "Message transmission of socket communication failed.",
	0xC029: "The content of the control data is incorrect, or the open setting parameter was specified as open without setting.",
	0xC035: "The existence of the partner device could not be confirmed within the response monitoring timer value.",
	0xC050: "When communication data code is set to ASCII, ASCII code data that cannot be converted to binary was received.",
	0xC051: "The maximum number of bit devices that can be read / written at once at one time is out of the allowable range.",
	0xC052: "The maximum number of word devices that can be read / written at once at one time is out of the allowable range.",
	0xC053: "The maximum number of bit devices that can be randomly read and written at one time is out of the allowable range.",
	0xC054: "The maximum number of word devices that can be read / written at random at one time is out of the allowable range.",
	0xC056: "Write and read request exceeding the maximum address.",
	0xC058: "The required data length after ASCII-binary conversion does not match the number of data in the character part (part of text).",
	0xC059: "The command or subcommand specification is incorrect. Commands and subcommands that cannot be used in the CPU unit.",
	0xC05B: "The CPU unit cannot write to or read from the specified device.",
	0xC05C: "The request content is incorrect. (Such as bit-wise writing and reading for word devices)",
	0xC05F: "The request cannot be executed for the target CPU module",
	0xC060: "The request content is incorrect. (Such as an incorrect data specification for a bit device)",
	0xC061: "The requested data length does not match the number of data in the character part (part of text).",
	0xC06F: "ASCII request message was received when the communication data code was set to \"binary.\" (For this error code, only the error history is registered and no abnormal response is returned.)",
	0xC0B6: "The channel specified by the dedicated instruction is out of range.",
	0xC0D8: "The specified number of blocks is out of range",
	0xC0DE: "Failed to receive message for socket communication.",
	0xC1A2: "Response to request could not be received.",
	0xC1AC: "The number of retransmissions is incorrect.",
	0xC1AD: "The data length is incorrectly specified.",
	0xC1AF: "The port number is incorrectly specified.",
	0xC1B0: "The specified connection has already been opened.",
	0xC1B1: "The specified connection has not completed open processing.",
	0xC1B3: "Another transmission / reception command is being executed on the specified channel.",
	0xC1B4: "The arrival time specification is incorrect.",
	0xC1BA: "The dedicated instruction was executed in the initial uncompleted state.",
	0xC1C6: "There is an error in the setting of the execution type of the dedicated instruction and the completion type when an error occurs.",
	0xC1CC: "Response with a data length exceeding the allowable range in SLMPSND was received, or the request data was specified incorrectly.",
	0xC1CD: "Failed to send message of SLMPSND command.",
	0xC1D0: "The request destination module I / O number of the dedicated instruction is incorrect.",
	0xC1D3: "A dedicated command not supported by the connection communication method was executed.",
	0xC200: "The remote password is incorrect",
	0xC201: "The port used for communication is locked with the remote password",
	0xC204: "Different from the partner device that requested unlock processing of the remote password.",
	0xC400: "The SP.ECPRTCL instruction was executed when communication protocol preparation was not completed (SD10692 = 0).",
	0xC401: "Specified a protocol number that is not registered in the CPU unit with the control data of the SP.ECPRTCL instruction, or executed the SP.ECPRTCL instruction without writing the protocol setting data.",
	0xC404: "The SP.ECPRTCL instruction was abnormally completed while accepting a cancel request during protocol execution.",
	0xC405: "In the control data of the SP.ECPRTCL instruction, the set value of the protocol number is out of range.",
	0xC410: "Reception waiting time has timed out.",
	0xC411: "The received data has exceeded 2046 bytes.",
	0xC417: "The data length of received data or the number of data is out of range.",
	0xC431: "Connection closed during execution of the SP.ECPRTCL instruction.",
	0xC810: "The remote password is incorrect. (Authentication failed 9 times or less)",
	0xC815: "The remote password is incorrect. (Authentication failed 10 times)",
	0xC816: "Remote password authentication lockout in progress.",
	0xCEE0: "Detected from another peripheral device or executed another iQSS function during automatic detection of connected device.",
	0xCEE1: "An abnormal frame was received.",
	0xCEE2: "An abnormal frame was received.",
	0xCF10: "An abnormal frame was received.",
	0xCF20: "The communication setting value is out of range, or a communication setting item that cannot be set for the target device has been set, or an item that must be set for the target device has not been set.",
	0xCF30: "Parameter not supported by target device was specified.",
	0xCF31: "An abnormal frame was received.",
	0xCF70: "An error has occurred in the Ethernet communication path.",
	0xCF71: "A timeout error has occurred.",
}

// ErrorMessage returns the catalogue description for an end code, or a
// generic fallback for codes not in the catalogue.
func ErrorMessage(code uint16) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return unknownErrorMessage
}

// IsKnownErrorCode reports whether the catalogue has an entry for code.
func IsKnownErrorCode(code uint16) bool {
	_, ok := errorMessages[code]
	return ok
}
