//go:build amd64

package syscalltable

// archTable maps linux/amd64 syscall numbers to names, per
// golang.org/x/sys/unix's SYS_* constants for this architecture. Only the
// syscalls a traced workload is realistically expected to hit are listed;
// anything else resolves through Name's "???" fallback.
var archTable = map[uint64]string{
	0:   "read",
	1:   "write",
	2:   "open",
	3:   "close",
	4:   "stat",
	5:   "fstat",
	6:   "lstat",
	7:   "poll",
	8:   "lseek",
	9:   "mmap",
	10:  "mprotect",
	11:  "munmap",
	12:  "brk",
	13:  "rt_sigaction",
	14:  "rt_sigprocmask",
	16:  "ioctl",
	17:  "pread64",
	18:  "pwrite64",
	19:  "readv",
	20:  "writev",
	21:  "access",
	22:  "pipe",
	23:  "select",
	32:  "dup",
	33:  "dup2",
	39:  "getpid",
	41:  "socket",
	42:  "connect",
	43:  "accept",
	44:  "sendto",
	45:  "recvfrom",
	49:  "bind",
	50:  "listen",
	56:  "clone",
	57:  "fork",
	59:  "execve",
	60:  "exit",
	61:  "wait4",
	62:  "kill",
	72:  "fcntl",
	78:  "getdents",
	79:  "getcwd",
	80:  "chdir",
	82:  "rename",
	83:  "mkdir",
	84:  "rmdir",
	85:  "creat",
	86:  "link",
	87:  "unlink",
	89:  "readlink",
	90:  "chmod",
	92:  "chown",
	95:  "umask",
	96:  "gettimeofday",
	97:  "getrlimit",
	102: "getuid",
	104: "getgid",
	107: "geteuid",
	108: "getegid",
	137: "statfs",
	157: "prctl",
	158: "arch_prctl",
	186: "gettid",
	202: "futex",
	217: "getdents64",
	228: "clock_gettime",
	231: "exit_group",
	232: "epoll_wait",
	257: "openat",
	262: "newfstatat",
	270: "pselect6",
	271: "ppoll",
	273: "set_robust_list",
	281: "epoll_pwait",
	293: "pipe2",
	302: "prlimit64",
	318: "getrandom",
	322: "execveat",
	332: "statx",
}
